package image

import (
	"context"
	"fmt"
	"strings"

	"jan-server/services/image-api/internal/utils/platformerrors"
)

// Validator applies the catalog rules to an ImageRequest.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	catalog *Catalog
}

// NewValidator returns a validator backed by the embedded catalog.
func NewValidator() *Validator {
	return NewValidatorWithCatalog(DefaultCatalog())
}

// NewValidatorWithCatalog returns a validator backed by the given catalog.
func NewValidatorWithCatalog(catalog *Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Catalog returns the rules the validator applies.
func (v *Validator) Catalog() *Catalog {
	return v.catalog
}

// Validate runs the model, dimension, quality, style and count checks in that
// order and returns the first failure.
func (v *Validator) Validate(ctx context.Context, req *ImageRequest) error {
	if req == nil {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"image request is required", nil, "image-request-missing")
	}

	model, ok := v.catalog.Model(req.Model)
	if !ok {
		return invalid(ctx, fmt.Sprintf("Invalid model. Must be %s", alternatives(v.catalog.ModelNames())))
	}

	if !model.SupportsDimension(req.Width, req.Height) {
		return invalid(ctx, fmt.Sprintf("Invalid dimensions for %s. Must be one of: [%s]",
			model.Label, strings.Join(model.Dimensions, ", ")))
	}

	if !v.catalog.HasQuality(req.Quality) {
		return invalid(ctx, fmt.Sprintf("Invalid quality. Must be %s", alternatives(v.catalog.Qualities)))
	}
	if strings.EqualFold(req.Quality, QualityHD) && !model.HD {
		return invalid(ctx, fmt.Sprintf("HD quality is only supported for %s model", v.hdModels()))
	}

	if !v.catalog.HasStyle(req.Style) {
		return invalid(ctx, fmt.Sprintf("Invalid style. Must be %s", alternatives(v.catalog.Styles)))
	}

	if model.SingleImage && req.NumImages != 1 {
		return invalid(ctx, fmt.Sprintf("For %s, number of images must be 1", model.Name))
	}

	return nil
}

func (v *Validator) hdModels() string {
	var names []string
	for _, m := range v.catalog.Models {
		if m.HD {
			names = append(names, m.Name)
		}
	}
	return strings.Join(names, " or ")
}

func invalid(ctx context.Context, message string) error {
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
		message, nil, platformerrors.CodeInvalidParameter)
}

// alternatives renders ["a","b","c"] as "'a', 'b' or 'c'".
func alternatives(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

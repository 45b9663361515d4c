package image

import (
	"context"

	"jan-server/services/image-api/internal/utils/platformerrors"
)

// Service orchestrates validation and the single provider call for a request.
type Service struct {
	validator *Validator
	provider  Provider
}

// NewService wires the orchestrator with its validator and provider.
func NewService(validator *Validator, provider Provider) *Service {
	return &Service{
		validator: validator,
		provider:  provider,
	}
}

// Models lists the model names the service accepts.
func (s *Service) Models() []string {
	return s.validator.Catalog().ModelNames()
}

// Generate validates req, calls the provider once and returns the image URLs
// in provider order. Validation errors are returned unchanged and the provider
// is not called.
func (s *Service) Generate(ctx context.Context, req *ImageRequest) (*ImageResponse, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	result, err := s.provider.Call(ctx, req.Prompt, NewGenerationOptions(req))
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			"image generation failed: "+causeMessage(err), err, platformerrors.CodeServerError)
	}

	urls := []string{}
	if result != nil {
		for _, item := range result.Items {
			urls = append(urls, item.URL)
		}
	}

	return &ImageResponse{ImageURLs: urls}, nil
}

func causeMessage(err error) string {
	if perr := platformerrors.GetPlatformError(err); perr != nil {
		return perr.Message
	}
	return err.Error()
}

package image

import (
	domain "jan-server/services/image-api/internal/domain/image"
)

// ImageGenerationRequest is the JSON body of POST /api/v1/images/generate.
// @Description Image generation request
type ImageGenerationRequest struct {
	// UserID identifies the end user on whose behalf the image is generated.
	UserID string `json:"userId" binding:"notblank" example:"user-123"`

	// Prompt is the text description of the desired image.
	Prompt string `json:"prompt" binding:"notblank" example:"A serene mountain landscape at sunset"`

	// Model is "dall-e-2" or "dall-e-3", matched case-insensitively.
	Model string `json:"model" binding:"notblank" example:"dall-e-3"`

	// Height in pixels. Allowed combinations depend on the model.
	Height *int `json:"height" binding:"required" example:"1024"`

	// Width in pixels. Allowed combinations depend on the model.
	Width *int `json:"width" binding:"required" example:"1024"`

	// Quality is "standard" or "hd". "hd" requires dall-e-3.
	Quality string `json:"quality" binding:"notblank" example:"standard" jsonschema:"enum=standard,enum=hd"`

	// Style is "natural" or "vivid".
	Style string `json:"style" binding:"notblank" example:"vivid" jsonschema:"enum=natural,enum=vivid"`

	// NumImages is the number of images to generate. dall-e-3 only accepts 1.
	NumImages *int `json:"numImages" binding:"required,min=1,max=10" example:"1" jsonschema:"minimum=1,maximum=10"`
}

// ToDomain converts the bound request into the domain value.
func (r ImageGenerationRequest) ToDomain() *domain.ImageRequest {
	return &domain.ImageRequest{
		UserID:    r.UserID,
		Prompt:    r.Prompt,
		Model:     r.Model,
		Height:    deref(r.Height),
		Width:     deref(r.Width),
		Quality:   r.Quality,
		Style:     r.Style,
		NumImages: deref(r.NumImages),
	}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

package image

import (
	domain "jan-server/services/image-api/internal/domain/image"
)

// ImageGenerationResponse is the success body of POST /api/v1/images/generate.
// @Description Generated image URLs, in provider order
type ImageGenerationResponse struct {
	ImageURLList []string `json:"imageUrlList" example:"https://images.example.com/generated/abc.png"`
}

// NewImageGenerationResponse maps the domain response to the wire shape.
func NewImageGenerationResponse(resp *domain.ImageResponse) ImageGenerationResponse {
	urls := []string{}
	if resp != nil && resp.ImageURLs != nil {
		urls = resp.ImageURLs
	}
	return ImageGenerationResponse{ImageURLList: urls}
}

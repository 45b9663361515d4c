package image

// Supported model identifiers. These are owned by this service and are not
// tied to any provider SDK enum.
const (
	ModelDallE2 = "dall-e-2"
	ModelDallE3 = "dall-e-3"
)

const (
	QualityStandard = "standard"
	QualityHD       = "hd"
)

// ImageRequest is an inbound generation request after transport decoding.
type ImageRequest struct {
	UserID    string
	Prompt    string
	Model     string
	Height    int
	Width     int
	Quality   string
	Style     string
	NumImages int
}

// GenerationOptions carries the request parameters to the provider unchanged.
type GenerationOptions struct {
	User    string
	Model   string
	Height  int
	Width   int
	Quality string
	Style   string
	N       int
}

// NewGenerationOptions copies the request fields verbatim.
func NewGenerationOptions(req *ImageRequest) GenerationOptions {
	return GenerationOptions{
		User:    req.UserID,
		Model:   req.Model,
		Height:  req.Height,
		Width:   req.Width,
		Quality: req.Quality,
		Style:   req.Style,
		N:       req.NumImages,
	}
}

// GenerationItem is a single generated image as reported by the provider.
type GenerationItem struct {
	URL           string
	RevisedPrompt string
}

// GenerationResult is the provider's answer, in provider order.
type GenerationResult struct {
	Items []GenerationItem
}

// ImageResponse is the result returned to callers.
type ImageResponse struct {
	ImageURLs []string
}

package image

import "context"

// Provider is the external text-to-image capability.
type Provider interface {
	Call(ctx context.Context, prompt string, opts GenerationOptions) (*GenerationResult, error)
}

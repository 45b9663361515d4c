package image

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/image-api/internal/utils/platformerrors"
)

type mockProvider struct {
	CallFunc func(ctx context.Context, prompt string, opts GenerationOptions) (*GenerationResult, error)
	calls    int
	prompt   string
	opts     GenerationOptions
}

func (m *mockProvider) Call(ctx context.Context, prompt string, opts GenerationOptions) (*GenerationResult, error) {
	m.calls++
	m.prompt = prompt
	m.opts = opts
	if m.CallFunc != nil {
		return m.CallFunc(ctx, prompt, opts)
	}
	return &GenerationResult{}, nil
}

func TestService_Generate_ReturnsProviderURLs(t *testing.T) {
	provider := &mockProvider{
		CallFunc: func(ctx context.Context, prompt string, opts GenerationOptions) (*GenerationResult, error) {
			return &GenerationResult{Items: []GenerationItem{{URL: "https://x/1.png", RevisedPrompt: "p!"}}}, nil
		},
	}
	svc := NewService(NewValidator(), provider)

	req := &ImageRequest{
		UserID: "u1", Prompt: "p", Model: ModelDallE3,
		Height: 1024, Width: 1024, Quality: QualityStandard, Style: "vivid", NumImages: 1,
	}
	resp, err := svc.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://x/1.png"}, resp.ImageURLs)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "p", provider.prompt)
	assert.Equal(t, GenerationOptions{
		User: "u1", Model: ModelDallE3, Height: 1024, Width: 1024,
		Quality: QualityStandard, Style: "vivid", N: 1,
	}, provider.opts)
}

func TestService_Generate_PreservesProviderOrder(t *testing.T) {
	provider := &mockProvider{
		CallFunc: func(ctx context.Context, prompt string, opts GenerationOptions) (*GenerationResult, error) {
			return &GenerationResult{Items: []GenerationItem{{URL: "c"}, {URL: "a"}, {URL: "b"}}}, nil
		},
	}
	svc := NewService(NewValidator(), provider)

	req := &ImageRequest{
		UserID: "u2", Prompt: "cats", Model: "DALL-E-2",
		Height: 512, Width: 512, Quality: QualityStandard, Style: "natural", NumImages: 3,
	}
	resp, err := svc.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, resp.ImageURLs)
	assert.Equal(t, "DALL-E-2", provider.opts.Model, "model is forwarded verbatim")
	assert.Equal(t, 3, provider.opts.N)
}

func TestService_Generate_EmptyResult(t *testing.T) {
	svc := NewService(NewValidator(), &mockProvider{})
	req := &ImageRequest{
		UserID: "u1", Prompt: "p", Model: ModelDallE3,
		Height: 1024, Width: 1024, Quality: QualityStandard, Style: "vivid", NumImages: 1,
	}

	resp, err := svc.Generate(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.ImageURLs)
	assert.Empty(t, resp.ImageURLs)
}

func TestService_Generate_ValidationFailureSkipsProvider(t *testing.T) {
	provider := &mockProvider{}
	svc := NewService(NewValidator(), provider)

	req := &ImageRequest{
		UserID: "u1", Prompt: "p", Model: ModelDallE3,
		Height: 1024, Width: 1024, Quality: QualityStandard, Style: "vivid", NumImages: 2,
	}
	resp, err := svc.Generate(context.Background(), req)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, platformerrors.IsValidationError(err))
	assert.Equal(t, "For dall-e-3, number of images must be 1", platformerrors.GetPlatformError(err).Message)
	assert.Zero(t, provider.calls)
}

func TestService_Generate_NilRequest(t *testing.T) {
	provider := &mockProvider{}
	_, err := NewService(NewValidator(), provider).Generate(context.Background(), nil)

	require.Error(t, err)
	assert.False(t, platformerrors.IsValidationError(err))
	assert.Zero(t, provider.calls)
}

func TestService_Generate_WrapsProviderError(t *testing.T) {
	upstream := errors.New("connection reset")
	provider := &mockProvider{
		CallFunc: func(ctx context.Context, prompt string, opts GenerationOptions) (*GenerationResult, error) {
			return nil, upstream
		},
	}
	svc := NewService(NewValidator(), provider)

	req := &ImageRequest{
		UserID: "u1", Prompt: "p", Model: ModelDallE2,
		Height: 256, Width: 256, Quality: QualityStandard, Style: "natural", NumImages: 1,
	}
	resp, err := svc.Generate(context.Background(), req)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.Equal(t, platformerrors.CodeServerError, platformerrors.GetPlatformError(err).UUID)
	assert.Equal(t, "image generation failed: connection reset", platformerrors.GetPlatformError(err).Message)
	assert.Equal(t, 1, provider.calls, "provider errors are not retried")
}

func TestService_Models(t *testing.T) {
	svc := NewService(NewValidator(), &mockProvider{})
	assert.Equal(t, []string{ModelDallE2, ModelDallE3}, svc.Models())
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRequest = `{
  "userId": "user-1",
  "prompt": "a lighthouse at dusk",
  "model": "dall-e-3",
  "height": 1024,
  "width": 1792,
  "quality": "hd",
  "style": "vivid",
  "numImages": 1
}`

func writeRequest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestValidate_OK(t *testing.T) {
	out, err := execute(t, "validate", "-f", writeRequest(t, validRequest))
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestValidate_RuleViolations(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "hd on dall-e-2",
			body:    `{"userId":"u","prompt":"p","model":"dall-e-2","height":512,"width":512,"quality":"hd","style":"vivid","numImages":1}`,
			message: "HD quality is only supported for dall-e-3 model",
		},
		{
			name:    "several images on dall-e-3",
			body:    `{"userId":"u","prompt":"p","model":"dall-e-3","height":1024,"width":1024,"quality":"standard","style":"natural","numImages":2}`,
			message: "For dall-e-3, number of images must be 1",
		},
		{
			name:    "unknown model",
			body:    `{"userId":"u","prompt":"p","model":"dall-e-4","height":1024,"width":1024,"quality":"standard","style":"natural","numImages":1}`,
			message: "Invalid model. Must be 'dall-e-2' or 'dall-e-3'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "validate", "-f", writeRequest(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Empty(t, out)
		})
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	_, err := execute(t, "validate", "-f", writeRequest(t, `{"userId":"  ","prompt":"p","model":"dall-e-2","width":256,"quality":"standard","style":"natural","numImages":1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User ID cannot be blank")
	assert.Contains(t, err.Error(), "Height cannot be null")
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := execute(t, "validate", "-f", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read request file")
}

func TestValidate_MalformedJSON(t *testing.T) {
	_, err := execute(t, "validate", "-f", writeRequest(t, `{"userId":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse request file")
}

func TestGenerate_PrintsURLs(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/images/generate", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"imageUrlList":["https://img/1.png","https://img/2.png"]}`))
	}))
	defer srv.Close()

	out, err := execute(t, "generate", "-f", writeRequest(t, validRequest), "--server", srv.URL+"/", "--token", "secret")
	require.NoError(t, err)
	assert.Equal(t, "https://img/1.png\nhttps://img/2.png\n", out)
	assert.Equal(t, "dall-e-3", received["model"])
	assert.EqualValues(t, 1792, received["width"])
}

func TestGenerate_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"invalid_parameter","message":"Invalid style. Must be natural or vivid"}`))
	}))
	defer srv.Close()

	_, err := execute(t, "generate", "-f", writeRequest(t, validRequest), "--server", srv.URL, "--token", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service returned status 400")
	assert.Contains(t, err.Error(), "Invalid style. Must be natural or vivid")
}

func TestSchema(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "Image Generation Request", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{"userId", "prompt", "model", "height", "width", "quality", "style", "numImages"} {
		assert.Contains(t, props, field)
	}

	numImages := props["numImages"].(map[string]any)
	assert.EqualValues(t, 1, numImages["minimum"])
	assert.EqualValues(t, 10, numImages["maximum"])
	assert.ElementsMatch(t, []any{"standard", "hd"}, props["quality"].(map[string]any)["enum"])
	assert.ElementsMatch(t, []any{"natural", "vivid"}, props["style"].(map[string]any)["enum"])
}

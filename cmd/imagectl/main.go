package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	imagerequest "jan-server/services/image-api/internal/interfaces/httpserver/requests/image"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "imagectl",
	Short: "Image API command-line tool",
	Long: `imagectl validates image generation requests offline, sends them to a
running image-api service, and prints the request JSON Schema.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(schemaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readRequestFile(path string) (*imagerequest.ImageGenerationRequest, error) {
	if path == "" {
		return nil, fmt.Errorf("request file is required (use -f)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request file: %w", err)
	}
	var req imagerequest.ImageGenerationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse request file: %w", err)
	}
	return &req, nil
}

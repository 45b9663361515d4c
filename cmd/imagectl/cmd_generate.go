package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	imageresponse "jan-server/services/image-api/internal/interfaces/httpserver/responses/image"
	"jan-server/services/image-api/internal/utils/httpclients"
)

const generatePath = "/api/v1/images/generate"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Send an image generation request to a running service",
	Long:  `POST a request file to the image-api service and print the returned image URLs.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("file", "f", "", "Request JSON file to send")
	generateCmd.Flags().String("server", "http://localhost:8186", "Base URL of the image-api service")
	generateCmd.Flags().Duration("timeout", 2*time.Minute, "Request timeout")
	generateCmd.Flags().String("token", "", "Bearer token when the service requires auth")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	server, _ := cmd.Flags().GetString("server")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	token, _ := cmd.Flags().GetString("token")

	req, err := readRequestFile(path)
	if err != nil {
		return err
	}

	client := httpclients.NewClient("imagectl", timeout, zerolog.Nop())
	defer client.Close()

	var result imageresponse.ImageGenerationResponse
	r := client.R().
		SetContext(cmd.Context()).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result)
	if token != "" {
		r.SetAuthToken(token)
	}

	resp, err := r.Post(strings.TrimRight(server, "/") + generatePath)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("service returned status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	out := cmd.OutOrStdout()
	if len(result.ImageURLList) == 0 {
		fmt.Fprintln(out, "no images returned")
		return nil
	}
	for _, url := range result.ImageURLList {
		fmt.Fprintln(out, url)
	}
	return nil
}

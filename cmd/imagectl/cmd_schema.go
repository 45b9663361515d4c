package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	imagerequest "jan-server/services/image-api/internal/interfaces/httpserver/requests/image"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the generation request body",
	RunE:  runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
	}
	schema := reflector.Reflect(&imagerequest.ImageGenerationRequest{})
	schema.Title = "Image Generation Request"
	schema.Description = "Body of POST " + generatePath

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

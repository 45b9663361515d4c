package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"

	"jan-server/services/image-api/internal/domain/image"
	imagerequest "jan-server/services/image-api/internal/interfaces/httpserver/requests/image"
	"jan-server/services/image-api/internal/utils/platformerrors"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an image generation request offline",
	Long: `Check a request file against the same field rules and model catalog the
service applies, without calling any provider.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringP("file", "f", "", "Request JSON file to validate")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	req, err := readRequestFile(path)
	if err != nil {
		return err
	}

	imagerequest.RegisterValidations()
	if err := binding.Validator.ValidateStruct(req); err != nil {
		if fields, ok := imagerequest.FieldErrors(err); ok {
			msgs := make([]string, 0, len(fields))
			for _, f := range fields {
				msgs = append(msgs, f.Message)
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	if err := image.NewValidator().Validate(cmd.Context(), req.ToDomain()); err != nil {
		if perr := platformerrors.GetPlatformError(err); perr != nil {
			return errors.New(perr.Message)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

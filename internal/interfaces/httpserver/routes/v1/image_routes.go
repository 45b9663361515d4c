package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jan-server/services/image-api/internal/interfaces/httpserver/handlers"
	imagerequest "jan-server/services/image-api/internal/interfaces/httpserver/requests/image"
	"jan-server/services/image-api/internal/interfaces/httpserver/responses"
	imageresponse "jan-server/services/image-api/internal/interfaces/httpserver/responses/image"
	"jan-server/services/image-api/internal/utils/platformerrors"
)

// ImageRoutes handles image generation routes.
type ImageRoutes struct {
	handler *handlers.ImageHandler
}

// NewImageRoutes creates a new ImageRoutes instance.
func NewImageRoutes(handler *handlers.ImageHandler) *ImageRoutes {
	imagerequest.RegisterValidations()
	return &ImageRoutes{handler: handler}
}

// Register registers the image routes.
func (r *ImageRoutes) Register(router gin.IRouter) {
	images := router.Group("/images")
	images.POST("/generate", r.PostGenerate)
}

// PostGenerate
// @Summary Generate images
// @Description Validates the request against the model rules and returns the generated image URLs.
// @Description
// @Description **Models and sizes:**
// @Description - dall-e-2: 256x256, 512x512, 1024x1024; 1 to 10 images; standard quality only
// @Description - dall-e-3: 1024x1024, 1792x1024, 1024x1792; exactly 1 image; standard or hd
// @Tags Images API
// @Accept json
// @Produce json
// @Param request body imagerequest.ImageGenerationRequest true "Image generation request"
// @Success 200 {object} imageresponse.ImageGenerationResponse "Generated image URLs"
// @Failure 400 {object} responses.ErrorResponse "Invalid request payload or rule violation"
// @Failure 401 {object} responses.ErrorResponse "Missing or invalid bearer token"
// @Failure 500 {object} responses.ErrorResponse "Image provider or internal failure"
// @Router /api/v1/images/generate [post]
func (r *ImageRoutes) PostGenerate(reqCtx *gin.Context) {
	var request imagerequest.ImageGenerationRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		if fieldErrs, ok := imagerequest.FieldErrors(err); ok && len(fieldErrs) > 0 {
			fields := make(map[string]string, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields[fe.Field] = fe.Message
			}
			responses.HandleFieldErrors(reqCtx, fields, fieldErrs[0].Message)
			return
		}
		message := err.Error()
		if errors.Is(err, io.EOF) {
			message = "Request body is required"
		}
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, message, platformerrors.CodeInvalidParameter)
		return
	}

	result, err := r.handler.GenerateImage(reqCtx.Request.Context(), request.ToDomain())
	if err != nil {
		_ = reqCtx.Error(err)
		responses.HandleError(reqCtx, err, "Image generation failed")
		return
	}

	reqCtx.JSON(http.StatusOK, imageresponse.NewImageGenerationResponse(result))
}

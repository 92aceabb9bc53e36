package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/photo-sanitizer/internal/pkg/httputil"
)

const maxVerifySize = 50 << 20 // 50MB

type VerifyHandler struct {
	verifySvc VerifyService
}

func NewVerifyHandler(verifySvc VerifyService) *VerifyHandler {
	return &VerifyHandler{verifySvc: verifySvc}
}

// Verify godoc
//
//	@Summary		Inspect metadata
//	@Description	Dump the EXIF tags embedded in a photo, grouped by directory
//	@Tags			verify
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Photo to inspect"
//	@Success		200		{object}	response.VerifyResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		422		{object}	httputil.ErrorResponse	"No readable metadata"
//	@Router			/verify [post]
func (h *VerifyHandler) Verify(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxVerifySize)

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.HandleError(c, toAppError(err))
		return
	}

	groups, err := h.verifySvc.Verify(c.Request.Context(), data)
	if err != nil {
		httputil.HandleError(c, toAppError(err))
		return
	}

	httputil.OK(c, response.VerifyResponse(groups))
}

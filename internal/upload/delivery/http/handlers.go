package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"confluence-assistant/internal/upload"
	uploadUC "confluence-assistant/internal/upload/usecase"
	pkgErrors "confluence-assistant/pkg/errors"
	"confluence-assistant/pkg/response"
)

// Upload godoc
// @Summary     Upload a document
// @Description Extracts the text of an uploaded file for use in a chat turn. Only text-like files up to 50KB are accepted.
// @Tags        Upload
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "File to extract"
// @Success     200 {object} model.UploadedDocument
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     413 {object} response.Resp "File too large"
// @Failure     415 {object} response.Resp "Unsupported file type"
// @Router      /api/v1/uploads [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(400, "file is required"))
		return
	}
	if fileHeader.Size > uploadUC.MaxFileSize {
		response.Error(c, h.mapError(upload.ErrFileTooLarge))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.l.Errorf(ctx, "open upload: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(400, "could not read file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, uploadUC.MaxFileSize+1))
	if err != nil {
		h.l.Errorf(ctx, "read upload: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(400, "could not read file"))
		return
	}

	doc, err := h.uc.Extract(ctx, fileHeader.Filename, data)
	if err != nil {
		h.l.Warnf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, doc)
}

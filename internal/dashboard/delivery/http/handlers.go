package http

import (
	"github.com/gin-gonic/gin"

	"confluence-assistant/internal/middleware"
	pkgErrors "confluence-assistant/pkg/errors"
	"confluence-assistant/pkg/response"
)

// Stats godoc
// @Summary     Usage statistics
// @Description Returns the user's chat activity summary and Confluence space count. Cached for up to a minute.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboard.Stats
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	stats, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(500, "internal server error"))
		return
	}

	response.OK(c, stats)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gallery-backend/internal/domains/admin/service"
	"gallery-backend/internal/shared/response"
)

type DashboardHandler struct {
	service service.DashboardServiceInterface
}

func NewDashboardHandler(svc service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		service: svc,
	}
}

// Stats - GET /v1/admin/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekolahdigital/siakad-backend/internal/response"
	"github.com/sekolahdigital/siakad-backend/internal/service"
)

// DashboardHandler serves the admin dashboard summary.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// GET /api/v1/admin/dashboard
// Returns entity counts, today's attendance summary and recent applicants.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	data, err := h.dashboardService.GetDashboardData(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, data)
}

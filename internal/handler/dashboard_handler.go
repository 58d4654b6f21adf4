package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/schoolms-backend/internal/middleware"
	"github.com/stemsi/schoolms-backend/internal/response"
	"github.com/stemsi/schoolms-backend/internal/service"
)

// DashboardHandler resolves the role dashboard for the active identity.
type DashboardHandler struct {
	viewService *service.ViewService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(viewService *service.ViewService) *DashboardHandler {
	return &DashboardHandler{viewService: viewService}
}

// Get handles GET /api/v1/dashboard.
func (h *DashboardHandler) Get(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}
	response.Success(c, http.StatusOK, h.viewService.ResolveDashboard(c.Request.Context(), identity))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/schoolms-backend/internal/middleware"
	"github.com/stemsi/schoolms-backend/internal/response"
	"github.com/stemsi/schoolms-backend/internal/service"
	"github.com/stemsi/schoolms-backend/internal/session"
)

// ViewHandler exposes named-view navigation and the session's
// navigation history.
type ViewHandler struct {
	viewService *service.ViewService
	sessions    *session.Manager
}

// NewViewHandler creates a new ViewHandler.
func NewViewHandler(viewService *service.ViewService, sessions *session.Manager) *ViewHandler {
	return &ViewHandler{viewService: viewService, sessions: sessions}
}

// Navigate handles GET /api/v1/views/:name. Query parameters become the
// view's params; an unknown name resolves to the role dashboard.
func (h *ViewHandler) Navigate(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	payload := h.viewService.Navigate(c.Request.Context(), identity, c.Param("name"), params)
	response.Success(c, http.StatusOK, payload)
}

// History handles GET /api/v1/views/history.
func (h *ViewHandler) History(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"history": h.sessions.History()})
}

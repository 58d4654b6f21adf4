package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/response"
	"github.com/stemsi/schoolms-backend/internal/service"
	"github.com/stemsi/schoolms-backend/internal/session"
	"github.com/stemsi/schoolms-backend/internal/validator"
)

// AuthHandler handles role-select login, logout and session restore.
type AuthHandler struct {
	authService *service.AuthService
	viewService *service.ViewService
	sessions    *session.Manager
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, viewService *service.ViewService, sessions *session.Manager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		viewService: viewService,
		sessions:    sessions,
		log:         log,
	}
}

// LoginResponse carries the new identity, its session token and the
// already-resolved dashboard so the client renders in one round trip.
type LoginResponse struct {
	Identity  *model.Identity      `json:"identity"`
	Token     string               `json:"token"`
	Dashboard *service.ViewPayload `json:"dashboard"`
}

// SessionResponse is the restore-session payload. Identity is nil when
// no valid session exists; that is a successful response, not an error.
type SessionResponse struct {
	Identity  *model.Identity      `json:"identity"`
	Dashboard *service.ViewPayload `json:"dashboard,omitempty"`
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	identity, err := h.authService.Login(req.Role)
	if err != nil {
		switch err {
		case service.ErrNoRoleSelected:
			response.Fail(c, http.StatusBadRequest, response.ErrNoRoleSelected)
		case service.ErrInvalidRole:
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidRole)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	token, err := h.authService.IssueSessionToken(identity)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to issue session token")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.sessions.Login(identity)
	h.log.Info().Str("role", string(identity.Role)).Str("name", identity.Name).Msg("logged in")

	response.Success(c, http.StatusOK, LoginResponse{
		Identity:  identity,
		Token:     token,
		Dashboard: h.viewService.ResolveDashboard(c.Request.Context(), identity),
	})
}

// Logout handles POST /api/v1/auth/logout. Logging out is always
// allowed, token or not.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout()
	h.log.Info().Msg("logged out")
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out."})
}

// GetSession handles GET /api/v1/auth/session: restore from the
// presented token. A missing or undecodable token resets to the
// logged-out state and still responds 200 with a nil identity.
func (h *AuthHandler) GetSession(c *gin.Context) {
	identity := h.authService.RestoreSession(bearerToken(c))
	if identity == nil {
		h.sessions.Logout()
		response.Success(c, http.StatusOK, SessionResponse{Identity: nil})
		return
	}

	h.sessions.Login(identity)
	response.Success(c, http.StatusOK, SessionResponse{
		Identity:  identity,
		Dashboard: h.viewService.ResolveDashboard(c.Request.Context(), identity),
	})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return c.Query("token")
}

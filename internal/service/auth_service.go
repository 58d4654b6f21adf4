package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stemsi/schoolms-backend/internal/config"
	"github.com/stemsi/schoolms-backend/internal/model"
)

// Common auth errors.
var (
	ErrNoRoleSelected = errors.New("no role selected")
	ErrInvalidRole    = errors.New("invalid role")
)

// SessionClaims is the persisted-session payload: the full identity
// embedded in standard JWT claims.
type SessionClaims struct {
	jwt.RegisteredClaims
	Identity model.Identity `json:"identity"`
}

// AuthService synthesizes identities from a selected role and encodes
// them as session tokens. There is deliberately no credential check
// anywhere in this service: login accepts any of the five roles
// unconditionally, which makes it unsuitable as real authentication.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login synthesizes the fixed identity for the given role. An empty role
// fails with ErrNoRoleSelected; a role outside the known set fails with
// ErrInvalidRole. Neither failure touches any state.
func (s *AuthService) Login(role model.Role) (*model.Identity, error) {
	if role == "" {
		return nil, ErrNoRoleSelected
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	identity := &model.Identity{
		ID:        roleAccountID(role),
		Email:     string(role) + "@school.edu",
		Name:      roleAccountName(role),
		Role:      role,
		RoleLabel: role.DisplayName(),
	}
	switch role {
	case model.RoleTeacher:
		identity.TeacherID = 1
	case model.RoleParent:
		identity.ParentID = 1
	case model.RoleStudent:
		identity.StudentID = 1
	}
	return identity, nil
}

// IssueSessionToken encodes an identity as a signed session token. The
// token is the persisted-session blob: overwritten by the client on
// every login, discarded on logout.
func (s *AuthService) IssueSessionToken(identity *model.Identity) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(identity.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		Identity: *identity,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// RestoreSession decodes a previously issued session token. Any decode
// or validation failure returns nil — the caller falls back to the
// logged-out state, it never sees the failure as an error.
func (s *AuthService) RestoreSession(tokenStr string) *model.Identity {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || !claims.Identity.Role.Valid() {
		return nil
	}
	identity := claims.Identity
	return &identity
}

// roleAccountID returns the fixed synthetic account id per role.
func roleAccountID(role model.Role) int {
	switch role {
	case model.RoleAdmin:
		return 1
	case model.RolePrincipal:
		return 2
	case model.RoleTeacher:
		return 3
	case model.RoleParent:
		return 4
	case model.RoleStudent:
		return 5
	}
	return 1
}

// roleAccountName returns the fixed display name per role.
func roleAccountName(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return "Admin User"
	case model.RolePrincipal:
		return "Dr. Principal"
	case model.RoleTeacher:
		return "Mr. Smith"
	case model.RoleParent:
		return "Mrs. Johnson"
	case model.RoleStudent:
		return "Johnny Johnson"
	}
	return string(role)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/loyaltyworks/rewards/internal/domain/errors"
	pkgAuth "github.com/loyaltyworks/rewards/internal/pkg/auth"
	"github.com/loyaltyworks/rewards/internal/server/http/dto"
	"github.com/loyaltyworks/rewards/internal/server/http/middleware"
)

// SessionHandler issues session tokens against configured service users.
type SessionHandler struct {
	store  *pkgAuth.CredentialStore
	tokens pkgAuth.TokenStrategy
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(store *pkgAuth.CredentialStore, tokens pkgAuth.TokenStrategy) *SessionHandler {
	return &SessionHandler{store: store, tokens: tokens}
}

// Create handles POST /api/session.
func (h *SessionHandler) Create(c *gin.Context) {
	if !requireXML(c) {
		return
	}
	var req dto.SessionRequest
	if err := c.ShouldBindXML(&req); err != nil {
		c.XML(http.StatusBadRequest, dto.ErrorDocument{Message: "Malformed session document"})
		return
	}
	if req.Login == "" || req.Password == "" {
		c.XML(http.StatusBadRequest, dto.ErrorDocument{Message: "Missing required fields: login, password"})
		return
	}

	role, err := h.store.Authenticate(req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.XML(http.StatusUnauthorized, dto.ErrorDocument{Message: "Invalid credentials"})
			return
		}
		c.XML(http.StatusInternalServerError, dto.ErrorDocument{Message: "Internal server error"})
		return
	}

	token, err := h.tokens.IssueToken(pkgAuth.Session{Login: req.Login, Role: role})
	if err != nil {
		c.XML(http.StatusInternalServerError, dto.ErrorDocument{Message: "Internal server error"})
		return
	}

	middleware.SetSessionCookie(c, token)
	c.XML(http.StatusOK, dto.SessionDocument{Login: req.Login, Role: role})
}

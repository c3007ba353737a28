package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/loyaltyworks/rewards/internal/pkg/auth"
	"github.com/loyaltyworks/rewards/internal/server/http/dto"
)

const (
	// LoginContextKey is a gin context key for the authenticated login.
	LoginContextKey = "userLogin"
	// RoleContextKey is a gin context key for the resolved service role.
	RoleContextKey = "userRole"

	sessionCookieName = "rewards_session"
	basicRealm        = `Basic realm="Customer Loyalty Manager"`
)

// AuthRequired gates endpoints behind HTTP Basic credentials or a session
// token issued by the session endpoint. The resolved role is attached to
// the context; no authorization decisions happen past this point.
func AuthRequired(store *pkgAuth.CredentialStore, tokens pkgAuth.TokenStrategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if login, password, ok := c.Request.BasicAuth(); ok {
			role, err := store.Authenticate(login, password)
			if err != nil {
				challenge(c)
				return
			}
			c.Set(LoginContextKey, login)
			c.Set(RoleContextKey, role)
			c.Next()
			return
		}

		if token := extractToken(c); token != "" {
			session, err := tokens.ParseToken(token)
			if err != nil {
				challenge(c)
				return
			}
			c.Set(LoginContextKey, session.Login)
			c.Set(RoleContextKey, session.Role)
			c.Next()
			return
		}

		challenge(c)
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}

func challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", basicRealm)
	c.XML(http.StatusUnauthorized, dto.ErrorDocument{Message: "Authentication required"})
	c.Abort()
}

// SetSessionCookie writes the session token cookie to the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

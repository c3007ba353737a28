package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/loyaltyworks/rewards/internal/domain/errors"
	"github.com/loyaltyworks/rewards/internal/server/http/dto"
	"github.com/loyaltyworks/rewards/internal/server/http/middleware"
)

// CurrentRole extracts the authenticated caller's role from context.
func CurrentRole(c *gin.Context) string {
	val, ok := c.Get(middleware.RoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(string)
	return role
}

// requireXML enforces the XML content type on mutating endpoints, answering
// 415 with an error document otherwise.
func requireXML(c *gin.Context) bool {
	contentType := c.ContentType()
	if !strings.Contains(strings.ToLower(contentType), "application/xml") &&
		!strings.Contains(strings.ToLower(contentType), "text/xml") {
		c.XML(http.StatusUnsupportedMediaType, dto.ErrorDocument{Message: "Only application/xml input is supported"})
		return false
	}
	return true
}

// writeError maps domain error kinds to boundary status codes.
func writeError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.XML(http.StatusNotFound, dto.ErrorDocument{Message: notFoundMessage})
	case errors.Is(err, domainErrors.ErrValidation):
		c.XML(http.StatusBadRequest, dto.ErrorDocument{Message: err.Error()})
	default:
		c.XML(http.StatusInternalServerError, dto.ErrorDocument{Message: "Internal server error"})
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/zestcart/zestcart/internal/pkg/auth"
)

const (
	// AdminIDContextKey is a gin context key for the authenticated operator.
	AdminIDContextKey  = "adminID"
	operatorCookieName = "zestcart_token"
)

// TokenParser resolves an operator identity from a signed token.
type TokenParser interface {
	ParseOperatorToken(token string) (string, error)
}

// OperatorRequired ensures a valid operator token accompanies the request.
func OperatorRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		adminID, err := parser.ParseOperatorToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(AdminIDContextKey, adminID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(operatorCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetOperatorToken writes the operator token cookie and header to response.
func SetOperatorToken(c *gin.Context, token string) {
	c.SetCookie(operatorCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nagoyameshi/backend/internal/types"
)

// SessionCookie carries the signed session token
const SessionCookie = "nagoyameshi_session"

const claimsKey = "claims"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// sessionToken reads the session cookie, falling back to a Bearer header
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// AuthMiddleware loads the session user into the context when a valid token
// is present. Anonymous requests pass through; a stale cookie is cleared.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			ClearSession(c)
			c.Next()
			return
		}

		// Store user info in context
		c.Set(claimsKey, claims)
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// RequireAuth sends anonymous visitors to the login page
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			redirectToLogin(c)
			return
		}
		c.Next()
	}
}

// RequireAdmin only lets ROLE_ADMIN sessions through
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			redirectToLogin(c)
			return
		}
		if !claims.IsAdmin() {
			ErrorPage(c, http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	target := "/login"
	if c.Request.Method == http.MethodGet {
		target += "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// CurrentUser returns the claims of the logged in user
func CurrentUser(c *gin.Context) (*types.TokenClaims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*types.TokenClaims)
	return claims, ok && claims != nil
}

// UserID returns the logged in user's id, or 0
func UserID(c *gin.Context) uint {
	if claims, ok := CurrentUser(c); ok {
		return claims.UserID
	}
	return 0
}

// SetSession stores token in the HttpOnly session cookie
func SetSession(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", secure, true)
}

func ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

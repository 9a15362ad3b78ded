package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/portfolio/internal/logger"
)

const (
	csrfSessionKey = "csrf_token"
	csrfFormField  = "csrf_token"
)

// csrfToken returns the session's token, creating one on first use.
func csrfToken(c *gin.Context) string {
	session := sessions.Default(c)
	if token, ok := session.Get(csrfSessionKey).(string); ok && token != "" {
		return token
	}

	token := uuid.NewString()
	session.Set(csrfSessionKey, token)
	if err := session.Save(); err != nil {
		logger.ErrorWithFields("failed to save csrf token", logger.Fields{"error": err.Error()})
	}
	return token
}

// CSRFProtect rejects state-changing requests whose form token does not
// match the session token.
func CSRFProtect() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		session := sessions.Default(c)
		expected, _ := session.Get(csrfSessionKey).(string)
		submitted := c.PostForm(csrfFormField)

		if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(submitted)) != 1 {
			logger.WarnWithFields("csrf token mismatch", logger.Fields{"path": c.Request.URL.Path})
			c.String(http.StatusBadRequest, "The CSRF token is missing or invalid.")
			c.Abort()
			return
		}
		c.Next()
	}
}

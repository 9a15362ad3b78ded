package handler

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/logger"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

type flashMessage struct {
	Category string
	Message  string
}

// addFlash queues a message for the next rendered page.
func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil {
		logger.ErrorWithFields("failed to save flash message", logger.Fields{"error": err.Error()})
	}
}

// consumeFlashes pops every queued message.
func consumeFlashes(c *gin.Context) []flashMessage {
	session := sessions.Default(c)

	var messages []flashMessage
	for _, category := range []string{flashSuccess, flashError} {
		for _, raw := range session.Flashes(category) {
			if text, ok := raw.(string); ok {
				messages = append(messages, flashMessage{Category: category, Message: text})
			}
		}
	}

	if len(messages) > 0 {
		if err := session.Save(); err != nil {
			logger.ErrorWithFields("failed to clear flash messages", logger.Fields{"error": err.Error()})
		}
	}
	return messages
}

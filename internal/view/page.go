package view

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CommonContext returns the values every public page template expects.
func CommonContext(skills []Skill, now time.Time) gin.H {
	return gin.H{
		"year":   now.Year(),
		"skills": skills,
	}
}

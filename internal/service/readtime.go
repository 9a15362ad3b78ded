package service

import (
	"fmt"
	"strings"
)

// ReadingSpeedWPM is the average reading speed used for read time estimates.
const ReadingSpeedWPM = 200

// EstimateReadTime returns an approximate reading time such as "3 min read".
// Partial minutes round up. Text without any words has no estimate and
// yields an empty string.
func EstimateReadTime(text string) string {
	words := len(strings.Fields(text))
	if words == 0 {
		return ""
	}

	minutes := (words + ReadingSpeedWPM - 1) / ReadingSpeedWPM
	return fmt.Sprintf("%d min read", minutes)
}

package db

import "gorm.io/gorm"

// Booking levels accepted by the tutoring form.
const (
	LevelGCSE   = "gcse"
	LevelALevel = "alevel"
)

// Booking is a tutoring request. Rows are written once and only read back by
// the admin listing; CreatedAt is the submission time.
type Booking struct {
	gorm.Model
	Reference      string `gorm:"size:36;uniqueIndex;not null"`
	Name           string `gorm:"size:80;not null"`
	Level          string `gorm:"size:20;not null"`
	ExamBoard      string `gorm:"size:60"`
	Email          string `gorm:"size:120;not null"`
	PreferredTimes string `gorm:"size:200"`
	Message        string `gorm:"type:text;not null"`
}

// LevelLabel returns the display name of the booking level.
func (b Booking) LevelLabel() string {
	switch b.Level {
	case LevelGCSE:
		return "GCSE"
	case LevelALevel:
		return "A-Level"
	default:
		return b.Level
	}
}

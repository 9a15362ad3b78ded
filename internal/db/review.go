package db

import "gorm.io/gorm"

// Reviewer types accepted by the review form.
const (
	ReviewerParent    = "parent"
	ReviewerStudent   = "student"
	ReviewerColleague = "colleague"
)

// Review is a testimonial. It stays hidden until Approved is set.
type Review struct {
	gorm.Model
	Name         string  `gorm:"size:80;not null"`
	ReviewerType string  `gorm:"size:20"`
	Role         *string `gorm:"size:120"`
	Message      string  `gorm:"type:text;not null"`
	Approved     bool    `gorm:"not null;default:false;index"`
}

// RoleText returns the role or an empty string when none was given.
func (r Review) RoleText() string {
	if r.Role == nil {
		return ""
	}
	return *r.Role
}

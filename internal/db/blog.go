package db

import "gorm.io/gorm"

// Blog is a post shown on the blog page. Slug is the stable key used by the
// seeding script, so rows are upserted rather than recreated.
type Blog struct {
	gorm.Model
	Slug         string `gorm:"size:200;uniqueIndex;not null"`
	CardPosition int    `gorm:"not null;default:0;index"`
	Title        string `gorm:"size:200;not null"`
	Meta         string `gorm:"size:200"`
	Summary      string `gorm:"type:text"`
	Content      string `gorm:"type:text"`
	ReadTime     string `gorm:"size:20"`
	Published    bool   `gorm:"not null;index"`
}

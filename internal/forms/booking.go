package forms

import (
	"strings"

	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

// BookingLevels lists the options of the booking form's level field.
var BookingLevels = []Choice{
	{Value: db.LevelGCSE, Label: "GCSE"},
	{Value: db.LevelALevel, Label: "A-Level"},
}

// BookingForm is the tutoring booking form. Field names carry the booking-
// prefix because it shares a page with the review form.
type BookingForm struct {
	Name           string `form:"booking-name" validate:"required,max=80"`
	Level          string `form:"booking-level" validate:"required,oneof=gcse alevel"`
	ExamBoard      string `form:"booking-exam_board" validate:"max=60"`
	Email          string `form:"booking-email" validate:"required,email,max=120"`
	PreferredTimes string `form:"booking-preferred_times" validate:"max=200"`
	Message        string `form:"booking-message" validate:"required,max=2000"`
}

// Validate trims the submitted values and checks them.
func (f *BookingForm) Validate() Errors {
	f.Name = strings.TrimSpace(f.Name)
	f.Level = strings.TrimSpace(f.Level)
	f.ExamBoard = strings.TrimSpace(f.ExamBoard)
	f.Email = strings.TrimSpace(f.Email)
	f.PreferredTimes = strings.TrimSpace(f.PreferredTimes)
	f.Message = strings.TrimSpace(f.Message)
	return check(f)
}

// Input converts the form into the service representation.
func (f *BookingForm) Input() service.BookingInput {
	return service.BookingInput{
		Name:           f.Name,
		Level:          f.Level,
		ExamBoard:      f.ExamBoard,
		Email:          f.Email,
		PreferredTimes: f.PreferredTimes,
		Message:        f.Message,
	}
}

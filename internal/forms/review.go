package forms

import (
	"strings"

	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

// ReviewSubmitField is present only when the review form was submitted.
const ReviewSubmitField = "review-submit"

// ReviewerTypes lists the options of the review form's reviewer type field.
var ReviewerTypes = []Choice{
	{Value: db.ReviewerParent, Label: "Parent"},
	{Value: db.ReviewerStudent, Label: "Student"},
	{Value: db.ReviewerColleague, Label: "Colleague / Professional"},
}

// ReviewForm is the testimonial form on the tutoring page.
type ReviewForm struct {
	Name         string `form:"review-name" validate:"required,max=80"`
	ReviewerType string `form:"review-reviewer_type" validate:"required,oneof=parent student colleague"`
	Role         string `form:"review-role" validate:"max=120"`
	Message      string `form:"review-message" validate:"required,min=20"`
	Submit       string `form:"review-submit" validate:"-"`
}

// Validate trims the submitted values and checks them.
func (f *ReviewForm) Validate() Errors {
	f.Name = strings.TrimSpace(f.Name)
	f.ReviewerType = strings.TrimSpace(f.ReviewerType)
	f.Role = strings.TrimSpace(f.Role)
	f.Message = strings.TrimSpace(f.Message)
	return check(f)
}

// Input converts the form into the service representation.
func (f *ReviewForm) Input() service.ReviewInput {
	return service.ReviewInput{
		Name:         f.Name,
		ReviewerType: f.ReviewerType,
		Role:         f.Role,
		Message:      f.Message,
	}
}

package forms

import (
	"strings"

	"github.com/portfolio/internal/service"
)

// ContactReasons lists the options of the contact form's reason field.
var ContactReasons = []Choice{
	{Value: "recruiter", Label: "Recruiter"},
	{Value: "team_lead", Label: "Team Lead"},
	{Value: "backend_java", Label: "Backend Developer"},
	{Value: "fullstack", Label: "Full-Stack Engineer"},
	{Value: "junior_engineer", Label: "Junior Software Engineer"},
	{Value: "freelance", Label: "Freelance / Client Project"},
	{Value: "collaboration", Label: "Collaboration / Networking"},
	{Value: "other", Label: "Other"},
}

// ContactForm is the home page contact form.
type ContactForm struct {
	Name    string `form:"name" validate:"required,max=80"`
	Company string `form:"company" validate:"max=120"`
	Email   string `form:"email" validate:"required,email,max=120"`
	Reason  string `form:"reason" validate:"required,oneof=recruiter team_lead backend_java fullstack junior_engineer freelance collaboration other"`
	Message string `form:"message" validate:"required,max=2000"`
}

// Validate trims the submitted values and checks them.
func (f *ContactForm) Validate() Errors {
	f.Name = strings.TrimSpace(f.Name)
	f.Company = strings.TrimSpace(f.Company)
	f.Email = strings.TrimSpace(f.Email)
	f.Reason = strings.TrimSpace(f.Reason)
	f.Message = strings.TrimSpace(f.Message)
	return check(f)
}

// ReasonLabel returns the display label of the selected reason.
func (f *ContactForm) ReasonLabel() string {
	return labelFor(ContactReasons, f.Reason)
}

// Input converts the form into the service representation.
func (f *ContactForm) Input() service.ContactInput {
	return service.ContactInput{
		Name:    f.Name,
		Company: f.Company,
		Email:   f.Email,
		Reason:  f.Reason,
		Message: f.Message,
	}
}

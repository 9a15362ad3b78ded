package service

import (
	"fmt"

	"github.com/portfolio/internal/db"
)

// ContactInput represents a validated contact form.
type ContactInput struct {
	Name    string
	Company string
	Email   string
	Reason  string
	Message string
}

// ContactNotification builds the email for a contact form submission.
func ContactNotification(input ContactInput) Message {
	body := fmt.Sprintf(`New contact form submission

Name: %s
Company: %s
Email: %s
Reason: %s

Message:
%s
`, input.Name, input.Company, input.Email, input.Reason, input.Message)

	return Message{
		Subject: "Portfolio contact form",
		Body:    body,
		ReplyTo: input.Email,
	}
}

// BookingNotification builds the email for a stored booking.
func BookingNotification(booking *db.Booking) Message {
	body := fmt.Sprintf(`New tutoring booking request

Name: %s
Level: %s
Email: %s
Preferred times: %s

Message:
%s
`, booking.Name, booking.Level, booking.Email, booking.PreferredTimes, booking.Message)

	return Message{
		Subject: "Tutoring booking request",
		Body:    body,
		ReplyTo: booking.Email,
	}
}

// ReviewNotification builds the email for a review awaiting approval.
func ReviewNotification(review *db.Review) Message {
	role := review.RoleText()
	if role == "" {
		role = "N/A"
	}

	body := fmt.Sprintf(`New review submitted (awaiting approval)

Name: %s
Reviewer type: %s
Role: %s

Message:
%s
`, review.Name, review.ReviewerType, role, review.Message)

	return Message{
		Subject: "New review awaiting approval",
		Body:    body,
	}
}

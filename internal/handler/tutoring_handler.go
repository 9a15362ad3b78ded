package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/forms"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/metrics"
	"github.com/portfolio/internal/service"
)

const (
	bookingAnchor = "/tutoring#booking-form"
	reviewsAnchor = "/tutoring#reviews"
)

type tutoringForms struct {
	booking       *forms.BookingForm
	bookingErrors forms.Errors
	review        *forms.ReviewForm
	reviewErrors  forms.Errors
}

// ShowTutoring renders the tutoring page with approved reviews.
func (a *API) ShowTutoring(c *gin.Context) {
	a.renderTutoring(c, http.StatusOK, tutoringForms{})
}

// SubmitTutoring dispatches to the review or booking form. Both share the
// page, so the review submit button decides which one was posted.
func (a *API) SubmitTutoring(c *gin.Context) {
	if _, ok := c.GetPostForm(forms.ReviewSubmitField); ok {
		a.submitReview(c)
		return
	}
	a.submitBooking(c)
}

func (a *API) submitBooking(c *gin.Context) {
	var form forms.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
	}

	if errs := form.Validate(); errs != nil {
		metrics.ObserveSubmission("booking", metrics.OutcomeInvalid)
		a.renderTutoring(c, http.StatusOK, tutoringForms{booking: &form, bookingErrors: errs})
		return
	}

	booking, err := a.bookings.Create(c.Request.Context(), form.Input())
	if err != nil {
		metrics.ObserveSubmission("booking", metrics.OutcomeFailed)
		logger.ErrorWithFields("tutoring booking failed", logger.Fields{"error": err.Error()})
		addFlash(c, flashError, "Sorry, your booking could not be processed.")
		redirect(c, bookingAnchor)
		return
	}
	metrics.ObserveSubmission("booking", metrics.OutcomeSuccess)

	err = a.mailer.Send(c.Request.Context(), service.BookingNotification(booking))
	metrics.ObserveNotification("booking", err)
	if err != nil {
		logger.ErrorWithFields("booking saved but email failed", logger.Fields{
			"error":     err.Error(),
			"reference": booking.Reference,
		})
		addFlash(c, flashError, "Your booking was saved, but the email could not be sent.")
		redirect(c, bookingAnchor)
		return
	}

	logger.InfoWithFields("tutoring booking received", logger.Fields{"reference": booking.Reference})
	addFlash(c, flashSuccess, "Thanks! Your booking request has been sent.")
	redirect(c, bookingAnchor)
}

func (a *API) submitReview(c *gin.Context) {
	var form forms.ReviewForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
	}

	if errs := form.Validate(); errs != nil {
		metrics.ObserveSubmission("review", metrics.OutcomeInvalid)
		a.renderTutoring(c, http.StatusOK, tutoringForms{review: &form, reviewErrors: errs})
		return
	}

	review, err := a.reviews.Create(c.Request.Context(), form.Input())
	if err != nil {
		metrics.ObserveSubmission("review", metrics.OutcomeFailed)
		logger.ErrorWithFields("review submission failed", logger.Fields{"error": err.Error()})
		addFlash(c, flashError, "Sorry, your review could not be submitted.")
		redirect(c, reviewsAnchor)
		return
	}
	metrics.ObserveSubmission("review", metrics.OutcomeSuccess)

	// the review is already stored, so a failed notification is only logged
	err = a.mailer.Send(c.Request.Context(), service.ReviewNotification(review))
	metrics.ObserveNotification("review", err)
	if err != nil {
		logger.ErrorWithFields("review saved but email notification failed", logger.Fields{
			"error":     err.Error(),
			"review_id": review.ID,
		})
	}

	addFlash(c, flashSuccess, "Thank you for your review. It may take a little while to appear on the site.")
	redirect(c, reviewsAnchor)
}

func (a *API) renderTutoring(c *gin.Context, status int, state tutoringForms) {
	if state.booking == nil {
		state.booking = &forms.BookingForm{}
	}
	if state.review == nil {
		state.review = &forms.ReviewForm{}
	}

	reviews, err := a.reviews.ListApproved(c.Request.Context())
	if err != nil {
		logger.ErrorWithFields("failed to load approved reviews", logger.Fields{"error": err.Error()})
		reviews = []db.Review{}
	}

	a.renderHTML(c, status, "tutoring.html", gin.H{
		"title":         "Tutoring",
		"bookingForm":   state.booking,
		"bookingErrors": state.bookingErrors,
		"bookingLevels": forms.BookingLevels,
		"reviewForm":    state.review,
		"reviewErrors":  state.reviewErrors,
		"reviewerTypes": forms.ReviewerTypes,
		"reviews":       reviews,
	})
}

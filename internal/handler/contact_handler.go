package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/forms"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/metrics"
	"github.com/portfolio/internal/service"
)

const contactAnchor = "/#contact-form"

// ShowHome renders the landing page with an empty contact form.
func (a *API) ShowHome(c *gin.Context) {
	a.renderHome(c, http.StatusOK, &forms.ContactForm{}, nil)
}

// SubmitContact validates the contact form and emails it to the site owner.
// Nothing is stored for contact messages.
func (a *API) SubmitContact(c *gin.Context) {
	var form forms.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(err)
	}

	if errs := form.Validate(); errs != nil {
		metrics.ObserveSubmission("contact", metrics.OutcomeInvalid)
		a.renderHome(c, http.StatusOK, &form, errs)
		return
	}

	input := form.Input()
	err := a.mailer.Send(c.Request.Context(), service.ContactNotification(input))
	metrics.ObserveNotification("contact", err)
	if err != nil {
		metrics.ObserveSubmission("contact", metrics.OutcomeFailed)
		logger.ErrorWithFields("contact form email failed", logger.Fields{
			"error":  err.Error(),
			"reason": input.Reason,
		})
		addFlash(c, flashError, "Sorry, your message could not be sent right now.")
		redirect(c, contactAnchor)
		return
	}

	metrics.ObserveSubmission("contact", metrics.OutcomeSuccess)
	logger.InfoWithFields("contact form sent", logger.Fields{"reason": input.Reason})
	addFlash(c, flashSuccess, "Thanks! Your message has been sent. I will get back to you")
	redirect(c, contactAnchor)
}

func (a *API) renderHome(c *gin.Context, status int, form *forms.ContactForm, errs forms.Errors) {
	a.renderHTML(c, status, "index.html", gin.H{
		"title":          "Home",
		"contactForm":    form,
		"contactErrors":  errs,
		"contactReasons": forms.ContactReasons,
	})
}

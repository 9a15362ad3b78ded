package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/service"
	"golang.org/x/crypto/bcrypt"
)

const adminSessionKey = "admin_user"

// ShowBookings lists every tutoring booking, newest first.
func (a *API) ShowBookings(c *gin.Context) {
	bookings, err := a.bookings.ListAll(c.Request.Context())
	if err != nil {
		logger.ErrorWithFields("failed to load bookings", logger.Fields{"error": err.Error()})
		a.renderHTML(c, http.StatusInternalServerError, "admin_bookings.html", gin.H{
			"title":    "Bookings",
			"bookings": []db.Booking{},
			"error":    "Bookings could not be loaded.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_bookings.html", gin.H{
		"title":    "Bookings",
		"bookings": bookings,
	})
}

// ShowReviews lists reviews awaiting approval and the published ones.
func (a *API) ShowReviews(c *gin.Context) {
	ctx := c.Request.Context()

	pending, err := a.reviews.ListPending(ctx)
	if err == nil {
		var approved []db.Review
		approved, err = a.reviews.ListApproved(ctx)
		if err == nil {
			a.renderHTML(c, http.StatusOK, "admin_reviews.html", gin.H{
				"title":    "Reviews",
				"pending":  pending,
				"approved": approved,
			})
			return
		}
	}

	logger.ErrorWithFields("failed to load reviews", logger.Fields{"error": err.Error()})
	a.renderHTML(c, http.StatusInternalServerError, "admin_reviews.html", gin.H{
		"title": "Reviews",
		"error": "Reviews could not be loaded.",
	})
}

// ApproveReview publishes a review on the tutoring page.
func (a *API) ApproveReview(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderError(c, http.StatusNotFound, "Not found", "That review does not exist.")
		return
	}

	review, err := a.reviews.Approve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			a.renderError(c, http.StatusNotFound, "Not found", "That review does not exist.")
			return
		}
		logger.ErrorWithFields("failed to approve review", logger.Fields{"error": err.Error(), "review_id": id})
		addFlash(c, flashError, "The review could not be approved.")
		redirect(c, "/admin/reviews")
		return
	}

	logger.InfoWithFields("review approved", logger.Fields{"review_id": review.ID})
	addFlash(c, flashSuccess, "Review by "+review.Name+" is now visible.")
	redirect(c, "/admin/reviews")
}

// ShowLoginPage renders the admin login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	if !a.adminAuthEnabled() {
		redirect(c, "/admin/bookings")
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_login.html", gin.H{"title": "Admin login"})
}

// Login checks the admin credentials and starts an admin session.
func (a *API) Login(c *gin.Context) {
	if !a.adminAuthEnabled() {
		redirect(c, "/admin/bookings")
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.admin.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(password))
	if !userOK || passErr != nil {
		logger.WarnWithFields("admin login rejected", logger.Fields{"client_ip": c.ClientIP()})
		a.renderHTML(c, http.StatusUnauthorized, "admin_login.html", gin.H{
			"title": "Admin login",
			"error": "Invalid username or password.",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(adminSessionKey, a.admin.Username)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_login.html", gin.H{
			"title": "Admin login",
			"error": "Session could not be saved.",
		})
		return
	}

	redirect(c, "/admin/bookings")
}

// Logout ends the admin session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(adminSessionKey)
	if err := session.Save(); err != nil {
		logger.ErrorWithFields("failed to clear admin session", logger.Fields{"error": err.Error()})
	}
	redirect(c, "/admin/login")
}

// AuthRequired gates the admin pages when an admin password is configured.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.adminAuthEnabled() {
			c.Next()
			return
		}

		session := sessions.Default(c)
		if user, ok := session.Get(adminSessionKey).(string); !ok || user == "" {
			redirect(c, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *API) adminAuthEnabled() bool {
	return strings.TrimSpace(a.admin.PasswordHash) != ""
}

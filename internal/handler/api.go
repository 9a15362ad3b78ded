package handler

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/forms"
	"github.com/portfolio/internal/service"
	"github.com/portfolio/internal/view"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	blogs    *service.BlogService
	bookings *service.BookingService
	reviews  *service.ReviewService
	mailer   service.Mailer
	skills   []view.Skill
	static   fs.FS
	siteURL  string
	admin    AdminCredentials
	now      func() time.Time
}

// AdminCredentials guards the admin pages. An empty PasswordHash leaves them open.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// Options configures NewAPI.
type Options struct {
	Mailer      service.Mailer
	StaticFS    fs.FS
	SiteBaseURL string
	Admin       AdminCredentials
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, opts Options) *API {
	mailer := opts.Mailer
	if mailer == nil {
		mailer = service.NewSMTPMailer(config.SMTPConfig{})
	}

	return &API{
		db:       gdb,
		blogs:    service.NewBlogService(gdb),
		bookings: service.NewBookingService(gdb),
		reviews:  service.NewReviewService(gdb),
		mailer:   mailer,
		skills:   view.LoadSkills(opts.StaticFS, "img"),
		static:   opts.StaticFS,
		siteURL:  opts.SiteBaseURL,
		admin:    opts.Admin,
		now:      time.Now,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// TemplateFuncs returns the helpers used by the HTML templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"fieldError": func(errs forms.Errors, field string) string {
			return errs.Get(field)
		},
		"formatDate": func(t time.Time) string {
			return t.In(time.Local).Format("2 Jan 2006")
		},
		"formatDateTime": func(t time.Time) string {
			return t.In(time.Local).Format("2006-01-02 15:04")
		},
	}
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := view.CommonContext(a.skills, a.now())
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["flashes"]; !exists {
		payload["flashes"] = consumeFlashes(c)
	}
	if _, exists := payload["csrfToken"]; !exists {
		payload["csrfToken"] = csrfToken(c)
	}

	c.HTML(status, template, payload)
}

func (a *API) renderError(c *gin.Context, status int, title, message string) {
	a.renderHTML(c, status, "error.html", gin.H{
		"title":   title,
		"message": message,
	})
}

// NotFound renders the 404 page for unknown routes.
func (a *API) NotFound(c *gin.Context) {
	a.renderError(c, http.StatusNotFound, "Not found", "The page you were looking for does not exist.")
}

package router

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/handler"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionName = "portfolio_session"

// Options configures SetupRouter.
type Options struct {
	SessionSecret string
	SecureCookies bool
	DisableCSRF   bool
}

// SetupRouter wires middleware, templates and routes onto a Gin engine.
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware())

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	if !opts.DisableCSRF {
		r.Use(handler.CSRFProtect())
	}

	tmpl := template.Must(template.New("").Funcs(handler.TemplateFuncs()).ParseFS(web.Templates(), "*.html"))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(web.Static()))

	r.NoRoute(api.NotFound)

	r.GET("/healthz", api.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/sitemap.xml", api.Sitemap)
	r.GET("/robots.txt", api.Robots)

	r.GET("/", api.ShowHome)
	r.POST("/", api.SubmitContact)
	r.GET("/tutoring", api.ShowTutoring)
	r.POST("/tutoring", api.SubmitTutoring)
	r.GET("/blog", api.ShowBlog)
	r.GET("/blog/:slug", api.ShowBlogPost)

	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			auth.GET("/bookings", api.ShowBookings)
			auth.GET("/reviews", api.ShowReviews)
			auth.POST("/reviews/:id/approve", api.ApproveReview)
		}
	}

	return r
}

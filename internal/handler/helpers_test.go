package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubHTMLRender struct {
	name string
	data gin.H
}

type stubHTMLInstance struct{}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	r.name = name
	r.data, _ = data.(gin.H)
	return &stubHTMLInstance{}
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

type stubMailer struct {
	mu   sync.Mutex
	sent []service.Message
	err  error
}

func (m *stubMailer) Send(_ context.Context, msg service.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

func (m *stubMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type testEnv struct {
	db     *gorm.DB
	api    *API
	mailer *stubMailer
	html   *stubHTMLRender
	router *gin.Engine
}

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func newTestEnv(t *testing.T, admin AdminCredentials) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := setupHandlerTestDB(t)
	mailer := &stubMailer{}
	api := NewAPI(gdb, Options{
		Mailer:      mailer,
		SiteBaseURL: "https://example.com",
		Admin:       admin,
	})

	html := &stubHTMLRender{}
	r := gin.New()
	r.HTMLRender = html
	r.Use(sessions.Sessions("portfolio_session", cookie.NewStore([]byte("test-secret"))))

	r.GET("/", api.ShowHome)
	r.POST("/", api.SubmitContact)
	r.GET("/tutoring", api.ShowTutoring)
	r.POST("/tutoring", api.SubmitTutoring)
	r.GET("/blog", api.ShowBlog)
	r.GET("/blog/:slug", api.ShowBlogPost)
	r.GET("/sitemap.xml", api.Sitemap)
	r.GET("/healthz", api.Health)
	r.GET("/admin/login", api.ShowLoginPage)
	r.POST("/admin/login", api.Login)
	auth := r.Group("/admin", api.AuthRequired())
	auth.GET("/bookings", api.ShowBookings)
	auth.GET("/reviews", api.ShowReviews)
	auth.POST("/reviews/:id/approve", api.ApproveReview)

	return &testEnv{db: gdb, api: api, mailer: mailer, html: html, router: r}
}

func (e *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) postForm(path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// sessionCookie returns the last session cookie written by the response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "portfolio_session" {
			found = c
		}
	}
	if found == nil {
		t.Fatal("expected session cookie to be set")
	}
	return found
}

func flashesFrom(t *testing.T, data gin.H) []flashMessage {
	t.Helper()

	flashes, ok := data["flashes"].([]flashMessage)
	if !ok && data["flashes"] != nil {
		t.Fatalf("unexpected flashes type %T", data["flashes"])
	}
	return flashes
}

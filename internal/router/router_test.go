package router

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/handler"
	"github.com/portfolio/internal/service"
	"github.com/portfolio/web"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nopMailer struct{}

func (nopMailer) Send(context.Context, service.Message) error { return nil }

func setupRouter(t *testing.T, opts Options) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := db.Open(dsn, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	api := handler.NewAPI(gdb, handler.Options{
		Mailer:      nopMailer{},
		StaticFS:    web.Static(),
		SiteBaseURL: "https://example.com",
	})
	if opts.SessionSecret == "" {
		opts.SessionSecret = "test-secret"
	}
	return SetupRouter(api, opts), gdb
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestTutoringPageShowsOnlyApprovedReviews(t *testing.T) {
	r, gdb := setupRouter(t, Options{DisableCSRF: true})
	reviews := service.NewReviewService(gdb)
	ctx := context.Background()

	approved, err := reviews.Create(ctx, service.ReviewInput{
		Name: "Approved Parent", ReviewerType: db.ReviewerParent, Message: "Brilliant tutor, my son loved every lesson.",
	})
	if err != nil {
		t.Fatalf("failed to create review: %v", err)
	}
	if _, err := reviews.Approve(ctx, approved.ID); err != nil {
		t.Fatalf("failed to approve review: %v", err)
	}
	if _, err := reviews.Create(ctx, service.ReviewInput{
		Name: "Pending Student", ReviewerType: db.ReviewerStudent, Message: "Still waiting for moderation here.",
	}); err != nil {
		t.Fatalf("failed to create review: %v", err)
	}

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/tutoring", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Approved Parent") {
		t.Fatal("approved review should be listed")
	}
	if strings.Contains(body, "Pending Student") {
		t.Fatal("pending review must not be listed")
	}
}

func TestBlogPageListsPublishedPostsInOrder(t *testing.T) {
	r, gdb := setupRouter(t, Options{DisableCSRF: true})
	blogs := service.NewBlogService(gdb)
	ctx := context.Background()

	for _, input := range []service.BlogInput{
		{Slug: "later", CardPosition: 2, Title: "Later Post", Content: "Second card.", Published: true},
		{Slug: "hidden", CardPosition: 3, Title: "Hidden Post", Content: "Draft.", Published: false},
		{Slug: "earlier", CardPosition: 1, Title: "Earlier Post", Content: "First card.", Published: true},
	} {
		if _, err := blogs.Upsert(ctx, input); err != nil {
			t.Fatalf("failed to seed %s: %v", input.Slug, err)
		}
	}

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/blog", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "Hidden Post") {
		t.Fatal("unpublished post must not be listed")
	}
	first := strings.Index(body, "Earlier Post")
	second := strings.Index(body, "Later Post")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected posts ordered by card position, got indexes %d and %d", first, second)
	}

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/blog/hidden", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected unpublished post to 404, got %d", rec.Code)
	}
}

func TestSystemRoutes(t *testing.T) {
	r, _ := setupRouter(t, Options{DisableCSRF: true})

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{path: "/healthz", status: http.StatusOK, want: `"ok"`},
		{path: "/robots.txt", status: http.StatusOK, want: "Disallow: /admin/"},
		{path: "/sitemap.xml", status: http.StatusOK, want: "<loc>https://example.com/blog</loc>"},
		{path: "/static/css/site.css", status: http.StatusOK},
		{path: "/static/img/java.webp", status: http.StatusOK, want: "WEBP"},
		{path: "/metrics", status: http.StatusOK},
		{path: "/does-not-exist", status: http.StatusNotFound, want: "does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(r, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if tt.want != "" && !strings.Contains(rec.Body.String(), tt.want) {
				t.Fatalf("expected body to contain %q, got %q", tt.want, rec.Body.String())
			}
		})
	}
}

func TestHomePageRendersContactForm(t *testing.T) {
	r, _ := setupRouter(t, Options{})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `id="contact-form"`) {
		t.Fatal("expected contact form on the home page")
	}
	if !strings.Contains(body, `name="csrf_token"`) {
		t.Fatal("expected csrf token field in the contact form")
	}
	if !strings.Contains(body, `src="/static/img/java.webp"`) || !strings.Contains(body, `width="48" height="48"`) {
		t.Fatal("expected skill icons with their dimensions")
	}
}

func TestPostWithoutCSRFTokenIsRejected(t *testing.T) {
	r, gdb := setupRouter(t, Options{})

	form := url.Values{
		"booking-name":    {"Priya"},
		"booking-level":   {"gcse"},
		"booking-email":   {"priya@example.com"},
		"booking-message": {"Help with algebra"},
	}
	req := httptest.NewRequest(http.MethodPost, "/tutoring", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := serve(r, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var count int64
	gdb.Model(&db.Booking{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected post must not store a booking, got %d", count)
	}
}

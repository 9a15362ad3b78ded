package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		// seeded posts embed raw <a> tags; bluemonday cleans the output
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML(), html.WithUnsafe()),
	)
	sanitizer = newSanitizer()
)

func newSanitizer() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

type blogCard struct {
	Blog    db.Blog
	Content template.HTML
}

// ShowBlog renders the published posts ordered by card position.
func (a *API) ShowBlog(c *gin.Context) {
	blogs, err := a.blogs.ListPublished(c.Request.Context())
	if err != nil {
		logger.ErrorWithFields("failed to load blogs", logger.Fields{"error": err.Error()})
		a.renderHTML(c, http.StatusInternalServerError, "blog.html", gin.H{
			"title": "Blog",
			"error": "Posts could not be loaded right now.",
		})
		return
	}

	cards := make([]blogCard, 0, len(blogs))
	for _, blog := range blogs {
		content, renderErr := renderMarkdown(blog.Content)
		if renderErr != nil {
			c.Error(renderErr)
			content = template.HTML(template.HTMLEscapeString(blog.Content))
		}
		cards = append(cards, blogCard{Blog: blog, Content: content})
	}

	a.renderHTML(c, http.StatusOK, "blog.html", gin.H{
		"title": "Blog",
		"posts": cards,
	})
}

// ShowBlogPost renders a single published post.
func (a *API) ShowBlogPost(c *gin.Context) {
	blog, err := a.blogs.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			a.renderError(c, http.StatusNotFound, "Not found", "That post does not exist.")
			return
		}
		logger.ErrorWithFields("failed to load blog", logger.Fields{"error": err.Error(), "slug": c.Param("slug")})
		a.renderError(c, http.StatusInternalServerError, "Something went wrong", "The post could not be loaded right now.")
		return
	}

	content, err := renderMarkdown(blog.Content)
	if err != nil {
		c.Error(err)
		content = template.HTML(template.HTMLEscapeString(blog.Content))
	}

	a.renderHTML(c, http.StatusOK, "blog_post.html", gin.H{
		"title":   blog.Title,
		"post":    blog,
		"content": content,
	})
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}

package handler

import (
	"encoding/xml"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/logger"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod"`
	Priority string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists the public pages. The blog entry uses the latest published
// post update so crawlers can tell when content changed.
func (a *API) Sitemap(c *gin.Context) {
	today := a.now().Format("2006-01-02")

	blogLastMod := today
	latest, ok, err := a.blogs.LatestUpdate(c.Request.Context())
	if err != nil {
		logger.ErrorWithFields("failed to read latest blog update", logger.Fields{"error": err.Error()})
	} else if ok {
		blogLastMod = latest.Format("2006-01-02")
	}

	set := sitemapURLSet{
		Xmlns: sitemapNamespace,
		URLs: []sitemapURL{
			{Loc: a.siteURL + "/", LastMod: today, Priority: "1.0"},
			{Loc: a.siteURL + "/tutoring", LastMod: today, Priority: "0.8"},
			{Loc: a.siteURL + "/blog", LastMod: blogLastMod, Priority: "0.8"},
		},
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}

// Robots serves robots.txt from the static assets.
func (a *API) Robots(c *gin.Context) {
	if a.static == nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	body, err := fs.ReadFile(a.static, "robots.txt")
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}

// Health reports that the process is up and the database answers.
func (a *API) Health(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	infos  []string
	warns  []string
	errors []string
}

func (r *recordingLogger) Debug(...any)          {}
func (r *recordingLogger) Info(args ...any)      { r.infos = append(r.infos, args[0].(string)) }
func (r *recordingLogger) Warn(args ...any)      { r.warns = append(r.warns, args[0].(string)) }
func (r *recordingLogger) Error(args ...any)     { r.errors = append(r.errors, args[0].(string)) }
func (r *recordingLogger) Debugf(string, ...any) {}
func (r *recordingLogger) Infof(string, ...any)  {}
func (r *recordingLogger) Warnf(string, ...any)  {}
func (r *recordingLogger) Errorf(string, ...any) {}

func TestInitFallsBackToInfo(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	Init("  ")
	require.NotNil(t, Log)
}

func TestGinMiddlewareLevelsByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	previous := Log
	rec := &recordingLogger{}
	Log = rec
	t.Cleanup(func() { Log = previous })

	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []string{"request handled"}, rec.infos)
	assert.Equal(t, []string{"request rejected"}, rec.warns)
	assert.Equal(t, []string{"request failed"}, rec.errors)
}

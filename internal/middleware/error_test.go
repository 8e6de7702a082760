package middleware

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New(ErrorView).Parse(`{{.status}} {{.message}}`)))
	return r
}

func TestRecoveryRendersErrorPage(t *testing.T) {
	r := newTestEngine()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "500 エラーが発生しました。")
}

func TestNotFoundPage(t *testing.T) {
	r := newTestEngine()
	r.NoRoute(NotFound())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "お探しのページは見つかりませんでした。")
}

func TestErrorPageUnknownStatus(t *testing.T) {
	r := newTestEngine()
	r.GET("/teapot", func(c *gin.Context) {
		ErrorPage(c, http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, w.Body.String(), "I'm a teapot")
}

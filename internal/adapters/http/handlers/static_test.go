package handlers

import (
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen/quote-service/web"
)

func newStaticRouter() *gin.Engine {
	files := fstest.MapFS{
		"index.html":   {Data: []byte("<h1>quotes</h1>")},
		"css/site.css": {Data: []byte("body{}")},
		"empty/x.txt":  {Data: []byte("x")},
	}

	router := gin.New()
	NewStaticHandler(files).RegisterStaticRoutes(router)

	return router
}

func TestStaticHandler_NoRoute(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"landing page", http.MethodGet, "/", http.StatusOK, "<h1>quotes</h1>"},
		{"asset", http.MethodGet, "/css/site.css", http.StatusOK, "body{}"},
		{"head", http.MethodHead, "/", http.StatusOK, ""},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, `{"error":"Не найдено"}`},
		{"directory without index", http.MethodGet, "/empty/", http.StatusNotFound, `{"error":"Не найдено"}`},
		{"wrong method", http.MethodPost, "/", http.StatusNotFound, `{"error":"Не найдено"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newStaticRouter(), tt.method, tt.target, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestStaticHandler_BundledPage(t *testing.T) {
	router := gin.New()
	NewStaticHandler(web.Static()).RegisterStaticRoutes(router)

	w := serve(router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/quotes/random")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

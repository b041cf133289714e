package handlers

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
)

// StaticHandler serves the browser front-end and answers every route the
// router does not know.
type StaticHandler struct {
	files      fs.FS
	fileServer http.Handler
}

// NewStaticHandler serves files from fsys. index.html at its root is the
// landing page.
func NewStaticHandler(fsys fs.FS) *StaticHandler {
	return &StaticHandler{
		files:      fsys,
		fileServer: http.FileServerFS(fsys),
	}
}

// NoRoute serves a static file for GET and HEAD when one exists at the
// request path. Anything else is 404 with the flat error body.
func (h *StaticHandler) NoRoute(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		dto.AbortWithFlatError(c, http.StatusNotFound, dto.MessageNotFound)
		return
	}

	if !h.exists(c.Request.URL.Path) {
		dto.AbortWithFlatError(c, http.StatusNotFound, dto.MessageNotFound)
		return
	}

	h.fileServer.ServeHTTP(c.Writer, c.Request)
}

// exists reports whether urlPath names a file, or a directory holding
// index.html.
func (h *StaticHandler) exists(urlPath string) bool {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	}

	info, err := fs.Stat(h.files, name)
	if err != nil {
		return false
	}

	if !info.IsDir() {
		return true
	}

	_, err = fs.Stat(h.files, path.Join(name, "index.html"))

	return err == nil
}

// RegisterStaticRoutes installs the handler as the engine's fallback.
func (h *StaticHandler) RegisterStaticRoutes(engine *gin.Engine) {
	engine.NoRoute(h.NoRoute)
}

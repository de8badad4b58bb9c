package api

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Options configures the router.
type Options struct {
	// StaticDir holds index.html and the frontend assets. Empty disables
	// static file serving.
	StaticDir   string
	CORSOrigins []string
	Logger      *slog.Logger
}

// NewRouter builds the gin engine serving the product API and the frontend.
func NewRouter(products Products, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), logRequests(log), corsMiddleware(opts.CORSOrigins))

	if opts.StaticDir != "" {
		router.StaticFile("/", filepath.Join(opts.StaticDir, "index.html"))
		router.Static("/static", opts.StaticDir)
	}

	h := &productHandler{service: products, log: log}
	h.register(router)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResp{Error: "Not found", Code: CodeNotFound})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResp{Error: "Method not allowed", Code: CodeMethodNotAllowed})
	})

	return router
}

package webserver

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/gin-gonic/gin"
)

// registerStatic mounts the bundled frontend when the asset directory
// exists at startup; otherwise the server runs API-only.
func registerStatic(r *gin.Engine) {
	dir := engine.Cfg.StaticDir
	if dir == "" {
		return
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		slog.Warn("frontend directory does not exist, only API will be served", slog.String("dir", dir))
		return
	}

	index := filepath.Join(dir, "index.html")
	r.Static("/static", dir)
	r.GET("/", func(c *gin.Context) {
		c.File(index)
	})
	// Catch-all index route for the frontend; API paths still 404.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
			return
		}
		c.File(index)
	})

	slog.Info("serving static files", slog.String("dir", dir))
}

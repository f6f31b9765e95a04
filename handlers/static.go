package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Index handles GET /: the front-end entry document.
func (h *Handler) Index(c *gin.Context) {
	c.File(filepath.Join(h.staticDir, "index.html"))
}

// Static serves any other front-end asset by relative path. It is the
// engine's NoRoute handler, so unknown API calls land here too.
func (h *Handler) Static(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.FileFromFS(path.Clean(c.Request.URL.Path), noListingFS{http.Dir(h.staticDir)})
}

// noListingFS hides directories that have no index.html, so the file
// server never renders a directory listing.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		index, err := n.fs.Open(path.Join(name, "index.html"))
		if err != nil {
			f.Close()
			return nil, errors.Join(fs.ErrNotExist, err)
		}
		index.Close()
	}
	return f, nil
}

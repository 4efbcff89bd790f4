// Package web embeds the single-page client and serves it with an index.html
// fallback for paths that match no asset.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed static
var staticFiles embed.FS

// Handler serves the embedded client assets. Unknown paths fall back to
// index.html so the app also loads from deep links.
func Handler() (http.Handler, error) {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded client assets: %w", err)
	}

	fileServer := http.FileServer(http.FS(assets))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" {
			name = "index.html"
		}

		if _, err := fs.Stat(assets, name); err != nil {
			index, err := fs.ReadFile(assets, "index.html")
			if err != nil {
				http.Error(w, "client assets missing", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(index)
			return
		}

		fileServer.ServeHTTP(w, r)
	}), nil
}

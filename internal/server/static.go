package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// spaHandler serves the pre-built single-page application bundle. Paths
// that resolve to a real file are served directly; everything else gets
// index.html so the client-side router can take over.
func spaHandler(staticDir string) http.Handler {
	fileServer := http.FileServer(http.Dir(staticDir))
	index := filepath.Join(staticDir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			http.ServeFile(w, r, index)
			return
		}

		fileServer.ServeHTTP(w, r)
	})
}

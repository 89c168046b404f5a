package route

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"dayplan/src-server/utils"
)

// SPA serves the static web client with an index.html fallback for
// client-side routes. Skipped entirely when no client dir is
// configured (API-only deployments).
func SPA(muxer *http.ServeMux, as *utils.AppState) {
	if as.Config.GetStaticWebClientDir() == "" {
		return
	}

	files := http.FS(os.DirFS(as.Config.GetStaticWebClientDir()))
	indexFile, err := files.Open("index.html")
	if err != nil {
		slog.Error("can't open index.html", "error", err)
		return
	}
	indexFileStat, err := indexFile.Stat()
	if err != nil {
		slog.Error("can't get index.html stat", "error", err)
		return
	}

	muxer.HandleFunc("GET /{filepath...}", func(w http.ResponseWriter, r *http.Request) {
		filepath := filepath.Clean(r.PathValue("filepath"))
		switch filepath {
		case ".":
			filepath = "index.html"
		case "calendar":
			filepath = "calendar/index.html"
		case "profile":
			filepath = "profile/index.html"
		case "settings":
			filepath = "settings/index.html"
		case "404":
			filepath = "404.html"
		}

		file, err := files.Open(filepath)
		if err != nil {
			http.ServeContent(w, r, indexFileStat.Name(), indexFileStat.ModTime(), indexFile)
			return
		}

		stat, err := file.Stat()
		if err != nil {
			http.ServeContent(w, r, indexFileStat.Name(), indexFileStat.ModTime(), indexFile)
			return
		}

		http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
	})
}

package api

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

// staticHandler serves the built frontend from a directory. "/" maps to
// index.html; a missing file is a JSON 404.
type staticHandler struct {
	root fs.FS
}

func newStaticHandler(dir string) *staticHandler {
	return &staticHandler{root: os.DirFS(dir)}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = "index.html"
	}

	f, err := h.root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			writeError(w, http.StatusNotFound, CodeNotFound, "Not found")
			return
		}
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		writeError(w, http.StatusNotFound, CodeNotFound, "Not found")
		return
	}
	rs, ok := f.(io.ReadSeeker)
	if !ok {
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), rs)
}

package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ServeHTTP dispatches a request: preflight OPTIONS requests are answered
// directly, GET requests carrying a Range header take the partial-content
// path, and everything else falls through to static serving.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w.Header())

	switch {
	case r.Method == http.MethodOptions:
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet && r.Header.Get("Range") != "":
		if err := s.serveRange(w, r); err != nil {
			writeError(w, err)
		}
	default:
		s.serveStatic(w, r)
	}
}

// serveRange answers a byte-range request with 206 Partial Content, reading
// exactly the requested span from the target file.
func (s *Server) serveRange(w http.ResponseWriter, r *http.Request) error {
	spec, err := parseRangeHeader(r.Header.Get("Range"))
	if err != nil {
		return err
	}

	filePath := s.resolvePath(r.URL.Path)
	info, err := os.Stat(filePath)
	if err != nil || !info.Mode().IsRegular() {
		return errFileNotFound
	}

	byteRange, err := spec.resolve(info.Size())
	if err != nil {
		return err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", filePath)
	}
	defer file.Close()

	data := make([]byte, byteRange.Length())
	if _, err := file.ReadAt(data, byteRange.Start); err != nil {
		return errors.Wrapf(err, "failed to read %d bytes at offset %d of %s",
			byteRange.Length(), byteRange.Start, filePath)
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Range", byteRange.ContentRange(info.Size()))
	w.Header().Set("Accept-Ranges", "bytes")
	w.WriteHeader(http.StatusPartialContent)
	if _, err := w.Write(data); err != nil {
		// Headers are already sent; nothing left to do but log it.
		log.Errorf("Error writing range response: %v", err)
	}
	return nil
}

// serveStatic delegates to the file server, advertising range support on the
// way through. Directories without an index.html get a generated listing.
// Only GET requests take the range path, so a Range header on HEAD is
// dropped here rather than letting the file server honor it.
func (s *Server) serveStatic(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Accept-Ranges", "bytes")
	if r.Method == http.MethodHead {
		r.Header.Del("Range")
	}

	if r.Method == http.MethodGet && s.listableDir(r.URL.Path) {
		s.serveListing(w, r)
		return
	}
	s.static.ServeHTTP(w, r)
}

// listableDir reports whether the request path names a directory that should
// get a generated listing. Paths without a trailing slash are left to the
// file server, which redirects them first.
func (s *Server) listableDir(urlPath string) bool {
	if !strings.HasSuffix(urlPath, "/") {
		return false
	}
	dir := s.resolvePath(urlPath)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(filepath.Join(dir, "index.html"))
	return os.IsNotExist(err)
}

// resolvePath maps a request URL path onto the server root. Cleaning the
// rooted path first keeps ".." segments from escaping the root.
func (s *Server) resolvePath(urlPath string) string {
	return filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+urlPath)))
}

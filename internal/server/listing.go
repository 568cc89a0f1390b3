package server

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// serveListing renders an HTML index of the directory the request maps to,
// one row per entry with its modification time and a human-readable size.
func (s *Server) serveListing(w http.ResponseWriter, r *http.Request) {
	dir := s.resolvePath(r.URL.Path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		writeError(w, errors.Wrapf(err, "failed to read directory %s", dir))
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	title := html.EscapeString(r.URL.Path)
	var b strings.Builder
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html><head><title>Index of %s</title></head><body>\n", title)
	fmt.Fprintf(&b, "<h1>Index of %s</h1>\n<table>\n", title)
	b.WriteString("<tr><th>Name</th><th>Last Modified</th><th>Size</th></tr>\n")
	if r.URL.Path != "/" {
		b.WriteString("<tr><td><a href=\"../\">../</a></td><td>-</td><td>-</td></tr>\n")
	}

	for _, entry := range entries {
		href := url.PathEscape(entry.Name())
		name := html.EscapeString(entry.Name())
		if entry.IsDir() {
			href += "/"
			name += "/"
		}

		modified, size := "-", "-"
		if info, err := entry.Info(); err == nil {
			modified = info.ModTime().Format("2006-01-02 15:04")
			if !info.IsDir() {
				size = humanize.Bytes(uint64(info.Size()))
			}
		}
		fmt.Fprintf(&b, "<tr><td><a href=\"%s\">%s</a></td><td>%s</td><td>%s</td></tr>\n",
			href, name, modified, size)
	}
	b.WriteString("</table>\n</body></html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, b.String()); err != nil {
		log.Errorf("Error writing directory listing: %v", err)
	}
}

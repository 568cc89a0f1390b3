package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestWriteErrorUnexpectedIsInternalServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatal("status mismatch:", rec.Code, "!=", http.StatusInternalServerError)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "Internal server error: boom" {
		t.Error("body mismatch:", body)
	}
}

func TestWriteErrorWrappedStatusErrorKeepsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.Wrap(errFileNotFound, "stat failed"))

	if rec.Code != http.StatusNotFound {
		t.Fatal("status mismatch:", rec.Code, "!=", http.StatusNotFound)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "File not found" {
		t.Error("body mismatch:", body)
	}
}

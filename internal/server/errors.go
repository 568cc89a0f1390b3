package server

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// statusError pairs an HTTP status code with the plain-text message sent to
// the client. Each fallible step of range handling returns one of these, and
// writeError maps them to a response in a single place.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string {
	return e.message
}

var (
	errInvalidRange  = &statusError{http.StatusBadRequest, "Invalid Range header"}
	errFileNotFound  = &statusError{http.StatusNotFound, "File not found"}
	errUnsatisfiable = &statusError{http.StatusRequestedRangeNotSatisfiable, "Requested Range Not Satisfiable"}
)

// writeError reports a handler failure to the client. Anything that is not
// a statusError is unexpected (e.g. the file vanished between the stat and
// the read) and becomes a 500 with the error text, logged for the operator.
func writeError(w http.ResponseWriter, err error) {
	if serr, ok := errors.Cause(err).(*statusError); ok {
		http.Error(w, serr.message, serr.status)
		return
	}
	log.Errorf("Error handling range request: %v", err)
	http.Error(w, fmt.Sprintf("Internal server error: %s", err), http.StatusInternalServerError)
}

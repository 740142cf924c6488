package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusdesk/registry-api/internal/store"
	"github.com/sirupsen/logrus"
)

// statusByKind maps store error kinds to HTTP statuses. Anything not in
// the table is an internal error: the client gets a uniform 500 and the
// detail goes to the log only.
var statusByKind = map[error]int{
	store.ErrNotFound: http.StatusNotFound,
	store.ErrConflict: http.StatusConflict,
}

func statusFor(err error) int {
	for kind, code := range statusByKind {
		if errors.Is(err, kind) {
			return code
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeStoreError picks the status from the error kind. notFoundMsg is used
// for 404s so each resource keeps its own wording; conflicts and internal
// errors get generic messages.
func writeStoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	status := statusFor(err)
	switch status {
	case http.StatusNotFound:
		writeMessage(w, status, notFoundMsg)
	case http.StatusConflict:
		writeMessage(w, status, "Duplicate value for a unique field")
	default:
		logrus.WithError(err).Error("request failed")
		writeMessage(w, status, "Internal server error")
	}
}

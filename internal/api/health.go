package api

import (
	"net/http"
	"time"
)

// HealthHandler reports liveness only. It deliberately does not touch the
// store: the service is "UP" whenever it can answer HTTP, database or not.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "UP",
			"timestamp": time.Now().UTC(),
		})
	}
}

package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// AccessLog logs every completed request: method, path, status and
// duration in milliseconds. The line format is for humans reading logs,
// not for machines; don't parse it.
func AccessLog(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				log.Infof("%s %s %d %dms",
					r.Method, r.URL.Path, ww.Status(), time.Since(start).Milliseconds())
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

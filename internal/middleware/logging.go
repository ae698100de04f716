package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			entry := log.WithFields(log.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.statusCode,
				"duration":   time.Since(begin).String(),
				"request_id": RequestIDFromContext(r.Context()),
				"user_agent": r.Header.Get("User-Agent"),
			})
			if rec.statusCode >= http.StatusInternalServerError {
				entry.Warnln("request failed")
				return
			}
			entry.Debugln("request served")
		})
	}
}

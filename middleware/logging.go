package middleware

import (
	"net/http"
	"time"

	"album-service/configs"

	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs one line per request with method, path, status
// and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: rw, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		configs.LogWithContext("http", "request").WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   recorder.status,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}

// RecoveryMiddleware converts handler panics into 500 responses instead of
// killing the process.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				configs.LogWithContext("http", "recovery").WithFields(logrus.Fields{
					"panic": rec,
					"path":  r.URL.Path,
				}).Error("handler panicked")
				http.Error(rw, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(rw, r)
	})
}

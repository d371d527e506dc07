package http

import (
	"net/http"
	"time"

	"newsroom/internal/logger"
)

// withLogging writes one access-log line per request once the downstream
// handler has finished, using the trace-scoped logger placed on the request
// context by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("bytes", lw.size).
			Dur("took", time.Since(start)).
			Msg("request served")
	})
}

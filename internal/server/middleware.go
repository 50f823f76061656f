package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// sessionHeader carries the browsing session identifier. A missing
// header gets a fresh ID minted server-side; it is always echoed back
// so the client can persist it.
const sessionHeader = "X-Session-ID"

// requestLogger logs each request with its chi request ID, status and
// duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())

		s.logger.Debug("request_started",
			requestID,
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Debug("request_completed",
			requestID,
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, ww.Status()),
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

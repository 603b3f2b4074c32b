package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger stores a request-scoped logger in the context and writes one
// access line per request once the handler returns. Fields added later with
// UpdateContext, such as the session RequireSession resolves, show up on the
// access line too.
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := logger.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
			r = r.WithContext(reqLogger.WithContext(r.Context()))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			zerolog.Ctx(r.Context()).WithLevel(accessLevel(status)).
				Str("method", r.Method).
				Str("route", routeLabel(r)).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// accessLevel raises upstream and internal failures above routine traffic.
func accessLevel(status int) zerolog.Level {
	switch {
	case status == http.StatusBadGateway || status == http.StatusGatewayTimeout:
		return zerolog.WarnLevel
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/edvin/camal/internal/camalapi"
	"github.com/edvin/camal/internal/console/response"
	"github.com/edvin/camal/internal/console/session"
	"github.com/edvin/camal/internal/model"
)

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/auth/login"

// RequireSession redirects requests without an access token cookie to the
// login page and attaches the caller's session to the rest. A token with no
// open session is verified with the API before one is opened for it; when
// the API refuses it, expired handles the request.
func RequireSession(sessions *session.Registry, expired http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := AccessToken(r)
			if token == "" {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			s, ok := sessions.Lookup(token)
			if !ok {
				var err error
				s, err = sessions.Verify(r.Context(), token)
				switch {
				case camalapi.IsUnauthenticated(err):
					sessionVerifications.WithLabelValues("refused").Inc()
					expired(w, r)
					return
				case errors.Is(err, session.ErrTooManySessions):
					sessionVerifications.WithLabelValues("full").Inc()
					zerolog.Ctx(r.Context()).Warn().Int("sessions", sessions.Len()).Msg("session cap reached")
					response.WriteError(w, http.StatusServiceUnavailable, "too many open sessions")
					return
				case err != nil:
					sessionVerifications.WithLabelValues("error").Inc()
					zerolog.Ctx(r.Context()).Error().Err(err).Msg("verify session")
					response.WriteError(w, response.ErrorStatus(err), camalapi.Message(err))
					return
				}
				sessionVerifications.WithLabelValues("accepted").Inc()
			}

			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("session", s.ID)
			})
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}

// AccessToken returns the token cookie value, or "" when absent.
func AccessToken(r *http.Request) string {
	c, err := r.Cookie(model.AccessTokenCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/edvin/camal/internal/camalapi"
	"github.com/edvin/camal/internal/console/middleware"
	"github.com/edvin/camal/internal/console/request"
	"github.com/edvin/camal/internal/console/response"
	"github.com/edvin/camal/internal/console/session"
	"github.com/edvin/camal/internal/model"
	"github.com/edvin/camal/internal/queries"
	"github.com/edvin/camal/internal/query"
)

// Cookies writes the access token cookie.
type Cookies struct {
	Secure bool
}

func (c Cookies) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     model.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     model.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// guard ends sessions the API no longer accepts.
type guard struct {
	sessions *session.Registry
	cookies  Cookies
}

// expire drops the caller's session and sends them back to login.
func (g guard) expire(w http.ResponseWriter, r *http.Request) {
	if token := middleware.AccessToken(r); token != "" {
		g.sessions.Drop(token)
	}
	g.cookies.Clear(w)
	http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
}

// Expired returns the handler that ends a refused session: it drops the
// session, clears the cookie and redirects to login.
func Expired(sessions *session.Registry, cookies Cookies) http.HandlerFunc {
	return guard{sessions: sessions, cookies: cookies}.expire
}

// queriesFor returns the caller's session queries. RequireSession puts
// them there; a missing session is treated as signed out.
func (g guard) queriesFor(w http.ResponseWriter, r *http.Request) (*queries.Queries, bool) {
	s := session.FromContext(r.Context())
	if s == nil {
		g.expire(w, r)
		return nil, false
	}
	return s.Queries, true
}

// writeResult writes res, or expires the session when the API rejected
// its token.
func writeResult[T any](g guard, w http.ResponseWriter, r *http.Request, okStatus int, res query.Result[T]) {
	if res.IsError() {
		if camalapi.IsUnauthenticated(res.Err) {
			g.expire(w, r)
			return
		}
		zerolog.Ctx(r.Context()).Warn().Err(res.Err).Msg("camal API call failed")
	}
	response.WriteResult(w, okStatus, res)
}

// writeInputError writes a 422 for field problems and a 400 otherwise.
func writeInputError(w http.ResponseWriter, err error) {
	if fields, ok := request.Fields(err); ok {
		response.WriteValidation(w, fields)
		return
	}
	response.WriteError(w, http.StatusBadRequest, err.Error())
}

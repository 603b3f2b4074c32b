package handler

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/edvin/camal/internal/camalapi"
	"github.com/edvin/camal/internal/console/middleware"
	"github.com/edvin/camal/internal/console/request"
	"github.com/edvin/camal/internal/console/response"
	"github.com/edvin/camal/internal/console/session"
	"github.com/edvin/camal/internal/model"
	"github.com/edvin/camal/internal/query"
)

// HomePath is the first dashboard page after signing in.
const HomePath = "/dashboard/people"

const warmTimeout = 30 * time.Second

//go:embed templates/login.html
var templates embed.FS

var loginPage = template.Must(template.ParseFS(templates, "templates/login.html"))

type loginView struct {
	Email   string
	Message string
	Fields  map[string]string
}

type Auth struct {
	api          *camalapi.Client
	sessions     *session.Registry
	cookies      Cookies
	warmCatalogs bool
}

func NewAuth(api *camalapi.Client, sessions *session.Registry, cookies Cookies, warmCatalogs bool) *Auth {
	return &Auth{api: api, sessions: sessions, cookies: cookies, warmCatalogs: warmCatalogs}
}

// Root sends visitors to the dashboard when they hold a token cookie and
// to the login page otherwise.
func (h *Auth) Root(w http.ResponseWriter, r *http.Request) {
	if middleware.AccessToken(r) != "" {
		http.Redirect(w, r, HomePath, http.StatusFound)
		return
	}
	http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
}

func (h *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.AccessToken(r) != "" {
		http.Redirect(w, r, HomePath, http.StatusFound)
		return
	}
	renderLogin(w, r, http.StatusOK, loginView{})
}

// Login exchanges credentials for a token, stores it in the cookie and
// opens the session. Form posts are redirected; JSON callers get the user.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	wantsJSON := request.WantsJSON(r)

	var req model.LoginRequest
	if err := request.Decode(r, &req); err != nil {
		if wantsJSON {
			writeInputError(w, err)
			return
		}
		view := loginView{Email: req.Email, Message: "Revise los datos ingresados"}
		if fields, ok := request.Fields(err); ok {
			view.Fields = fields
		}
		renderLogin(w, r, http.StatusUnprocessableEntity, view)
		return
	}

	env, err := h.api.Login(r.Context(), req)
	if err != nil {
		zerolog.Ctx(r.Context()).Info().Err(err).Str("email", req.Email).Msg("login rejected")
		h.loginFailed(w, r, wantsJSON, response.ErrorStatus(err), req.Email, camalapi.Message(err))
		return
	}

	token := env.Data.AccessToken
	if token == "" {
		zerolog.Ctx(r.Context()).Error().Str("email", req.Email).Msg("login reply carried no access token")
		h.loginFailed(w, r, wantsJSON, http.StatusBadGateway, req.Email, "El servidor no devolvió un token de acceso")
		return
	}

	s, err := h.sessions.Open(token)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("open session")
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrTooManySessions) {
			status = http.StatusServiceUnavailable
		}
		h.loginFailed(w, r, wantsJSON, status, req.Email, "No se pudo abrir la sesión")
		return
	}
	h.cookies.Set(w, token)
	zerolog.Ctx(r.Context()).Info().Int("user_id", env.Data.User.ID).Str("user", env.Data.User.DisplayName()).Msg("signed in")

	if h.warmCatalogs {
		h.warm(r.Context(), s)
	}

	if wantsJSON {
		response.WriteResult(w, http.StatusOK, query.Result[model.User]{
			Status:    query.StatusSuccess,
			Data:      env.Data.User,
			UpdatedAt: time.Now(),
		})
		return
	}
	http.Redirect(w, r, HomePath, http.StatusSeeOther)
}

func (h *Auth) loginFailed(w http.ResponseWriter, r *http.Request, wantsJSON bool, status int, email, message string) {
	if wantsJSON {
		response.WriteError(w, status, message)
		return
	}
	renderLogin(w, r, status, loginView{Email: email, Message: message})
}

// Logout forgets the session and clears the cookie.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.AccessToken(r); token != "" {
		h.sessions.Drop(token)
	}
	h.cookies.Clear(w)
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}

// warm loads the lookup lists in the background so the first form opens
// from cache.
func (h *Auth) warm(ctx context.Context, s *session.Session) {
	logger := zerolog.Ctx(ctx)
	ctx = session.WithSession(context.WithoutCancel(ctx), s)

	go func() {
		ctx, cancel := context.WithTimeout(ctx, warmTimeout)
		defer cancel()
		if _, err := s.Queries.LoadCatalogs(ctx); err != nil {
			logger.Warn().Err(err).Msg("warm catalogs")
		}
	}()
}

func renderLogin(w http.ResponseWriter, r *http.Request, status int, view loginView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := loginPage.Execute(w, view); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render login page")
	}
}

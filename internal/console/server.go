package console

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/edvin/camal/internal/camalapi"
	"github.com/edvin/camal/internal/config"
	"github.com/edvin/camal/internal/console/handler"
	mw "github.com/edvin/camal/internal/console/middleware"
	"github.com/edvin/camal/internal/console/session"
	"github.com/edvin/camal/internal/queries"
)

type Server struct {
	router   chi.Router
	logger   zerolog.Logger
	cfg      *config.Config
	api      *camalapi.Client
	sessions *session.Registry
}

func NewServer(logger zerolog.Logger, cfg *config.Config, api *camalapi.Client, sessions *session.Registry) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		cfg:      cfg,
		api:      api,
		sessions: sessions,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(chimw.Recoverer)
	s.router.Use(mw.Metrics)
	s.router.Use(mw.CORS(s.cfg.CORSOrigins))
}

func (s *Server) setupRoutes() {
	cookies := handler.Cookies{Secure: s.cfg.CookieSecure}

	// Prometheus metrics
	s.router.Handle("/metrics", promhttp.Handler())
	s.router.Get("/healthz", s.handleHealthz)

	auth := handler.NewAuth(s.api, s.sessions, cookies, s.cfg.WarmCatalogs)
	s.router.Get("/", auth.Root)
	s.router.Get("/auth/login", auth.LoginPage)
	s.router.Post("/auth/login", auth.Login)
	s.router.Post("/auth/logout", auth.Logout)

	s.router.Route("/dashboard", func(r chi.Router) {
		r.Use(mw.RequireSession(s.sessions, handler.Expired(s.sessions, cookies)))

		lookup := handler.NewLookup(s.sessions, cookies)
		r.Get("/profile", lookup.Profile)
		r.Get("/catalogs", lookup.Catalogs)

		mountResource(r, "/people", handler.NewResource(s.sessions, cookies, (*queries.Queries).People), nil)

		mountResource(r, "/introducers", handler.NewResource(s.sessions, cookies, (*queries.Queries).Introducers), func(r chi.Router) {
			r.Get("/{id}/brands", lookup.IntroducerBrands)
		})

		mountResource(r, "/brands", handler.NewResource(s.sessions, cookies, (*queries.Queries).Brands), func(r chi.Router) {
			r.Get("/unassigned", lookup.UnassignedBrands)
			r.Get("/specie/{id}", lookup.BrandsBySpecie)
			r.Get("/introducer/{id}", lookup.BrandsByIntroducer)
		})

		mountResource(r, "/species", handler.NewResource(s.sessions, cookies, (*queries.Queries).Species), nil)

		mountResource(r, "/lines", handler.NewResource(s.sessions, cookies, (*queries.Queries).Lines), func(r chi.Router) {
			r.Get("/specie/{id}", lookup.LinesBySpecie)
		})

		mountResource(r, "/corral-groups", handler.NewResource(s.sessions, cookies, (*queries.Queries).CorralGroups), func(r chi.Router) {
			r.Get("/line/{id}", lookup.CorralGroupsByLine)
		})

		mountResource(r, "/corrals", handler.NewResource(s.sessions, cookies, (*queries.Queries).Corrals), func(r chi.Router) {
			r.Get("/corral-group/{id}", lookup.CorralsByGroup)
		})

		mountResource(r, "/vehicle-types", handler.NewResource(s.sessions, cookies, (*queries.Queries).VehicleTypes), nil)

		mountResource(r, "/vehicles", handler.NewResource(s.sessions, cookies, (*queries.Queries).Vehicles), func(r chi.Router) {
			r.Get("/plate/{plate}", lookup.VehicleByPlate)
		})

		mountResource(r, "/carriers", handler.NewResource(s.sessions, cookies, (*queries.Queries).Carriers), nil)
		mountResource(r, "/disinfections", handler.NewResource(s.sessions, cookies, (*queries.Queries).Disinfections), nil)
		mountResource(r, "/condition-transports", handler.NewResource(s.sessions, cookies, (*queries.Queries).ConditionTransports), nil)
	})
}

// mountResource registers the standard list, detail and form routes of a
// dashboard page plus any page-specific lookups.
func mountResource[T, R, F any](r chi.Router, path string, h *handler.Resource[T, R, F], extra func(chi.Router)) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/all", h.All)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		if extra != nil {
			extra(r)
		}
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{"status": "ok", "sessions": s.sessions.Len()})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

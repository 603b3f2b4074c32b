package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/camal/internal/camalapi"
	"github.com/edvin/camal/internal/console/session"
	"github.com/edvin/camal/internal/model"
	"github.com/edvin/camal/internal/query"
)

// refusingAPI answers every call with a 401.
func refusingAPI(t *testing.T) *camalapi.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401,"message":"Token inválido","data":null}`))
	}))
	t.Cleanup(srv.Close)
	return camalapi.NewClient(srv.URL)
}

func expiredTo(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, path, http.StatusFound)
	}
}

func TestRequireSession_RedirectsWithoutCookie(t *testing.T) {
	sessions := session.NewRegistry(camalapi.NewClient("http://camal.invalid"), query.DefaultConfig(), 0, zerolog.Nop())
	t.Cleanup(sessions.Close)

	called := false
	h := RequireSession(sessions, expiredTo("/expired"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/people", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	assert.Equal(t, 0, sessions.Len())
}

func TestRequireSession_AttachesSession(t *testing.T) {
	sessions := session.NewRegistry(camalapi.NewClient("http://camal.invalid"), query.DefaultConfig(), 0, zerolog.Nop())
	t.Cleanup(sessions.Close)
	opened, err := sessions.Open("tok-1")
	require.NoError(t, err)

	var got *session.Session
	var token string
	h := RequireSession(sessions, expiredTo("/expired"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = session.FromContext(r.Context())
		token = camalapi.AccessToken(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/dashboard/people", nil)
	r.AddCookie(&http.Cookie{Name: model.AccessTokenCookie, Value: "tok-1"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Same(t, opened, got)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, 1, sessions.Len())
}

func TestRequireSession_RefusedTokenOpensNothing(t *testing.T) {
	sessions := session.NewRegistry(refusingAPI(t), query.DefaultConfig(), 0, zerolog.Nop())
	t.Cleanup(sessions.Close)

	called := false
	h := RequireSession(sessions, expiredTo("/expired"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	for i := range 50 {
		r := httptest.NewRequest(http.MethodGet, "/dashboard/people/abc", nil)
		r.AddCookie(&http.Cookie{Name: model.AccessTokenCookie, Value: fmt.Sprintf("forged-%d", i)})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/expired", rec.Header().Get("Location"))
	}

	assert.False(t, called)
	assert.Equal(t, 0, sessions.Len())
}

func TestAccessToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, AccessToken(r))

	r.AddCookie(&http.Cookie{Name: model.AccessTokenCookie, Value: "abc"})
	assert.Equal(t, "abc", AccessToken(r))
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://localhost:3000/"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	serve := func(method, origin, requestMethod string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(method, "/dashboard/people", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		if requestMethod != "" {
			r.Header.Set("Access-Control-Request-Method", requestMethod)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec
	}

	t.Run("allowed origin", func(t *testing.T) {
		rec := serve(http.MethodGet, "http://localhost:3000", "")

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "X-Request-Id", rec.Header().Get("Access-Control-Expose-Headers"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		rec := serve(http.MethodGet, "http://evil.example", "")

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("no origin", func(t *testing.T) {
		rec := serve(http.MethodGet, "", "")

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Empty(t, rec.Header().Values("Vary"))
	})

	t.Run("preflight", func(t *testing.T) {
		rec := serve(http.MethodOptions, "http://localhost:3000", http.MethodPut)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "GET, POST, PUT", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("preflight from unknown origin", func(t *testing.T) {
		rec := serve(http.MethodOptions, "http://evil.example", http.MethodPost)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("plain options reaches the router", func(t *testing.T) {
		rec := serve(http.MethodOptions, "http://localhost:3000", "")

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(RequestLogger(logger))
	router.Use(Metrics)
	router.Get("/dashboard/people/{id}", func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/people/7", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inside, entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inside))
	require.NoError(t, json.Unmarshal(lines[1], &entry))

	assert.NotEmpty(t, inside["request_id"])
	assert.Equal(t, inside["request_id"], entry["request_id"])
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/dashboard/people/7", entry["path"])
	assert.Equal(t, "/dashboard/people/{id}", entry["route"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])
	assert.Equal(t, 2.0, entry["bytes"])
}

func TestRequestLogger_CarriesSessionAndUpstreamLevel(t *testing.T) {
	var buf bytes.Buffer
	sessions := session.NewRegistry(camalapi.NewClient("http://camal.invalid"), query.DefaultConfig(), 0, zerolog.Nop())
	t.Cleanup(sessions.Close)
	s, err := sessions.Open("tok-1")
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.With(RequireSession(sessions, expiredTo("/expired"))).Get("/dashboard/species/all", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	r := httptest.NewRequest(http.MethodGet, "/dashboard/species/all", nil)
	r.AddCookie(&http.Cookie{Name: model.AccessTokenCookie, Value: "tok-1"})
	router.ServeHTTP(httptest.NewRecorder(), r)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, s.ID, entry["session"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(http.StatusBadGateway), entry["status"])
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Metrics)
	router.Get("/dashboard/corrals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := pageRequests.WithLabelValues(http.MethodGet, "/dashboard/corrals/{id}", "4xx")
	unmatched := pageRequests.WithLabelValues(http.MethodGet, unmatchedRoute, "4xx")
	before, beforeUnmatched := testutil.ToFloat64(counter), testutil.ToFloat64(unmatched)

	for _, path := range []string{"/dashboard/corrals/1", "/dashboard/corrals/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
}

func TestRequireSession_CountsVerifications(t *testing.T) {
	sessions := session.NewRegistry(refusingAPI(t), query.DefaultConfig(), 0, zerolog.Nop())
	t.Cleanup(sessions.Close)
	refused := sessionVerifications.WithLabelValues("refused")
	before := testutil.ToFloat64(refused)

	h := RequireSession(sessions, expiredTo("/expired"))(http.NotFoundHandler())
	r := httptest.NewRequest(http.MethodGet, "/dashboard/people", nil)
	r.AddCookie(&http.Cookie{Name: model.AccessTokenCookie, Value: "forged"})
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, before+1, testutil.ToFloat64(refused))
}

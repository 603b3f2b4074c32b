package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/edvin/camal/internal/camalapi"
	"github.com/edvin/camal/internal/queries"
	"github.com/edvin/camal/internal/query"
)

// Session is one signed-in browser: its access token and its own query
// cache, so cached data never crosses users.
type Session struct {
	// ID is a short hash of the token, safe to log.
	ID      string
	Token   string
	Queries *queries.Queries

	lastSeen time.Time
}

type contextKey struct{}

// WithSession stores s in ctx along with its access token for API calls.
func WithSession(ctx context.Context, s *Session) context.Context {
	ctx = camalapi.WithAccessToken(ctx, s.Token)
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored by WithSession, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}

// ErrTooManySessions is returned when opening a session would exceed the
// registry's cap.
var ErrTooManySessions = errors.New("too many open sessions")

// Registry owns the per-session query clients. Sessions are only opened for
// tokens the camal API has accepted.
type Registry struct {
	api    *camalapi.Client
	cfg    query.Config
	max    int
	logger zerolog.Logger

	verify singleflight.Group

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates a registry holding at most maxSessions sessions. Zero
// means no cap.
func NewRegistry(api *camalapi.Client, cfg query.Config, maxSessions int, logger zerolog.Logger) *Registry {
	return &Registry{
		api:      api,
		cfg:      cfg,
		max:      maxSessions,
		logger:   logger.With().Str("component", "sessions").Logger(),
		sessions: make(map[string]*Session),
	}
}

// Lookup returns the open session for token without creating one.
func (r *Registry) Lookup(token string) (*Session, bool) {
	id := sessionID(token)

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if ok {
		s.lastSeen = time.Now()
	}
	return s, ok
}

// Open returns the session for a token the API just issued, creating its
// cache on first use.
func (r *Registry) Open(token string) (*Session, error) {
	id := sessionID(token)

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.lastSeen = time.Now()
		return s, nil
	}
	if r.max > 0 && len(r.sessions) >= r.max {
		return nil, ErrTooManySessions
	}

	qc, err := query.NewClient(r.cfg, r.logger)
	if err != nil {
		return nil, err
	}
	s := &Session{ID: id[:12], Token: token, Queries: queries.New(r.api, qc), lastSeen: time.Now()}
	r.sessions[id] = s
	r.logger.Debug().Str("session", s.ID).Msg("session opened")
	return s, nil
}

// Verify resumes a session for a token this process has not seen, such as
// a cookie from before a restart. The token is checked against the profile
// endpoint first, and the API's error is returned when it is refused.
func (r *Registry) Verify(ctx context.Context, token string) (*Session, error) {
	if s, ok := r.Lookup(token); ok {
		return s, nil
	}

	id := sessionID(token)
	v, err, _ := r.verify.Do(id, func() (any, error) {
		if _, err := r.api.Profile(camalapi.WithAccessToken(ctx, token)); err != nil {
			return nil, err
		}
		return r.Open(token)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// Drop discards the session for token and its cache.
func (r *Registry) Drop(token string) {
	id := sessionID(token)

	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.Queries.Cache().Close()
		r.logger.Debug().Str("session", s.ID).Msg("session closed")
	}
}

// Sweep drops sessions unused for longer than idle and returns how many.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	r.mu.Lock()
	var stale []*Session
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.Queries.Cache().Close()
	}
	return len(stale)
}

// Run sweeps idle sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(idle); n > 0 {
				r.logger.Info().Int("dropped", n).Msg("swept idle sessions")
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close drops every session.
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range all {
		s.Queries.Cache().Close()
	}
}

func sessionID(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

package query

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultStaleTime  = 30 * time.Second
	DefaultRetry      = 1
	DefaultRetryDelay = time.Second
	DefaultMaxEntries = 1000
)

type Config struct {
	// StaleTime is how long a successful result is served without refetching.
	StaleTime time.Duration
	// Retry is the number of extra attempts a failed read gets.
	Retry int
	// RetryDelay is the wait between attempts.
	RetryDelay time.Duration
	// MaxEntries bounds the number of cached keys.
	MaxEntries int64
}

// DefaultConfig mirrors the console-wide defaults: one retry for reads.
func DefaultConfig() Config {
	return Config{
		StaleTime:  DefaultStaleTime,
		Retry:      DefaultRetry,
		RetryDelay: DefaultRetryDelay,
		MaxEntries: DefaultMaxEntries,
	}
}

// Query describes one cached read.
type Query[T any] struct {
	Key         Key
	Fetch       func(ctx context.Context) (T, error)
	Placeholder T
}

// Mutation describes one write and the tags it makes stale.
type Mutation[T any] struct {
	Run         func(ctx context.Context) (T, error)
	Invalidates []string
}

type entry struct {
	data      any
	hasData   bool
	err       error
	updatedAt time.Time
}

type flight struct {
	data any
	err  error
}

// Client is the cache context shared by every query of one session. It is
// safe for concurrent use.
type Client struct {
	cfg    Config
	logger zerolog.Logger
	store  *ristretto.Cache[string, *entry]
	group  singleflight.Group

	// closed is set with mu held; save and Invalidate check it under mu.
	closed atomic.Bool

	mu    sync.Mutex
	index map[string]map[string]struct{}
	gen   map[string]uint64
}

func NewClient(cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.Retry < 0 {
		cfg.Retry = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Millisecond
	}

	store, err := ristretto.NewCache(&ristretto.Config[string, *entry]{
		NumCounters:        cfg.MaxEntries * 10,
		MaxCost:            cfg.MaxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create query store: %w", err)
	}

	return &Client{
		cfg:    cfg,
		logger: logger.With().Str("component", "query").Logger(),
		store:  store,
		index:  make(map[string]map[string]struct{}),
		gen:    make(map[string]uint64),
	}, nil
}

// Close releases the store. Fetches still in flight complete for their
// callers but are no longer cached, and reads afterwards always miss.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Swap(true) {
		return
	}
	c.store.Close()
}

// Fetch returns the cached value for q when it is fresh, otherwise fetches
// it. Concurrent callers on the same key share one network call.
func Fetch[T any](ctx context.Context, c *Client, q Query[T]) Result[T] {
	key := q.Key.String()
	cached, ok := c.lookup(key)
	if ok && cached.err == nil && c.fresh(cached) {
		cacheHits.WithLabelValues(q.Key.Tag).Inc()
		return successResult[T](cached)
	}
	cacheMisses.WithLabelValues(q.Key.Tag).Inc()

	ch := c.start(ctx, q.Key, func(ctx context.Context) (any, error) {
		return q.Fetch(ctx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return errorResult(q, cached, ok, res.Err)
		}
		f := res.Val.(flight)
		if f.err != nil {
			return errorResult(q, cached, ok, f.err)
		}
		return Result[T]{Status: StatusSuccess, Data: f.data.(T), UpdatedAt: time.Now()}
	case <-ctx.Done():
		return errorResult(q, cached, ok, ctx.Err())
	}
}

// Prefetch starts fetching q in the background unless a fresh value is
// cached. Pair it with Peek for polling consumers.
func Prefetch[T any](ctx context.Context, c *Client, q Query[T]) {
	if cached, ok := c.lookup(q.Key.String()); ok && cached.err == nil && c.fresh(cached) {
		return
	}
	c.start(ctx, q.Key, func(ctx context.Context) (any, error) {
		return q.Fetch(ctx)
	})
}

// Peek returns the current state of q without blocking or fetching.
func Peek[T any](c *Client, q Query[T]) Result[T] {
	cached, ok := c.lookup(q.Key.String())
	if !ok {
		return Result[T]{Status: StatusPending, Data: q.Placeholder}
	}
	if cached.err != nil {
		return errorResult(q, cached, true, cached.err)
	}
	return successResult[T](cached)
}

// Mutate runs a write once and, only when it succeeds, invalidates the
// tags the write makes stale.
func Mutate[T any](ctx context.Context, c *Client, m Mutation[T]) Result[T] {
	v, err := m.Run(ctx)
	if err != nil {
		return Result[T]{Status: StatusError, Data: v, Err: err}
	}
	c.Invalidate(m.Invalidates...)
	return Result[T]{Status: StatusSuccess, Data: v, UpdatedAt: time.Now()}
}

// Invalidate drops every cached key under the given tags. Fetches already
// in flight for those tags finish for their callers but are not cached,
// and the next read starts a new network call.
func (c *Client) Invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return
	}
	for _, tag := range tags {
		c.gen[tag]++
		for key := range c.index[tag] {
			c.store.Del(key)
			c.group.Forget(key)
		}
		delete(c.index, tag)
		invalidations.WithLabelValues(tag).Inc()
	}
	c.logger.Debug().Strs("tags", tags).Msg("invalidated")
}

func (c *Client) lookup(key string) (*entry, bool) {
	if c.closed.Load() {
		return nil, false
	}
	return c.store.Get(key)
}

func (c *Client) fresh(e *entry) bool {
	return time.Since(e.updatedAt) < c.cfg.StaleTime
}

// start joins or begins the flight for key. The flight runs detached from
// the caller's cancellation so a caller going away does not fail the
// others waiting on it.
func (c *Client) start(ctx context.Context, key Key, fetch func(context.Context) (any, error)) <-chan singleflight.Result {
	k := key.String()

	c.mu.Lock()
	startGen := c.gen[key.Tag]
	c.track(key.Tag, k)
	c.mu.Unlock()

	flightCtx := context.WithoutCancel(ctx)
	return c.group.DoChan(k, func() (any, error) {
		data, err := c.run(flightCtx, fetch)
		if err != nil {
			fetchErrors.WithLabelValues(key.Tag).Inc()
			c.logger.Warn().Err(err).Str("key", k).Msg("query fetch failed")
		}
		c.save(key.Tag, k, startGen, data, err)
		return flight{data: data, err: err}, nil
	})
}

// run calls fetch, retrying failures Retry times.
func (c *Client) run(ctx context.Context, fetch func(context.Context) (any, error)) (any, error) {
	var out any
	backoff := retry.WithMaxRetries(uint64(c.cfg.Retry), retry.NewConstant(c.cfg.RetryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		v, err := fetch(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		out = v
		return nil
	})
	return out, err
}

func (c *Client) save(tag, key string, startGen uint64, data any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() || c.gen[tag] != startGen {
		return
	}

	e := &entry{data: data, hasData: err == nil, err: err, updatedAt: time.Now()}
	if err != nil {
		// Keep the last good value next to the error.
		if prev, ok := c.store.Get(key); ok && prev.hasData {
			e.data = prev.data
			e.hasData = true
			e.updatedAt = prev.updatedAt
		}
	}
	c.store.Set(key, e, 1)
	c.store.Wait()
	c.track(tag, key)
}

// track must be called with mu held.
func (c *Client) track(tag, key string) {
	keys, ok := c.index[tag]
	if !ok {
		keys = make(map[string]struct{})
		c.index[tag] = keys
	}
	keys[key] = struct{}{}
}

func successResult[T any](e *entry) Result[T] {
	return Result[T]{Status: StatusSuccess, Data: e.data.(T), UpdatedAt: e.updatedAt}
}

func errorResult[T any](q Query[T], cached *entry, ok bool, err error) Result[T] {
	res := Result[T]{Status: StatusError, Data: q.Placeholder, Err: err}
	if ok && cached.hasData {
		res.Data = cached.data.(T)
		res.UpdatedAt = cached.updatedAt
	}
	return res
}

package query

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/camal/internal/camalapi"
)

func newTestClient(t *testing.T, mutate func(*Config)) *Client {
	t.Helper()
	cfg := DefaultConfig()
	cfg.RetryDelay = time.Millisecond
	if mutate != nil {
		mutate(&cfg)
	}
	c, err := NewClient(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func countingQuery(tag string, calls *atomic.Int32, data []string) Query[[]string] {
	return Query[[]string]{
		Key: NewKey(tag, nil),
		Fetch: func(context.Context) ([]string, error) {
			calls.Add(1)
			return data, nil
		},
		Placeholder: []string{},
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "species", NewKey("species", nil).String())
	assert.Equal(t, "species", NewKey("species", url.Values{}).String())

	a := NewKey("brands", url.Values{"status": {"true"}, "name": {"GS"}})
	b := NewKey("brands", url.Values{"name": {"GS"}, "status": {"true"}})
	assert.Equal(t, a, b)
	assert.Equal(t, "brands?name=GS&status=true", a.String())
	assert.Equal(t, "brands/filter?name=GS&status=true", a.WithScope("filter").String())
	assert.NotEqual(t, a.String(), a.WithScope("filter").String())
	assert.Equal(t, "brands", a.WithScope("filter").Tag)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestPeek_PlaceholderBeforeFirstResolution(t *testing.T) {
	c := newTestClient(t, nil)

	release := make(chan struct{})
	q := Query[[]string]{
		Key: NewKey("species", nil),
		Fetch: func(context.Context) ([]string, error) {
			<-release
			return []string{"Bovino"}, nil
		},
		Placeholder: []string{},
	}

	res := Peek(c, q)
	assert.True(t, res.IsPending())
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)

	Prefetch(context.Background(), c, q)
	res = Peek(c, q)
	assert.True(t, res.IsPending())
	assert.NotNil(t, res.Data)

	close(release)
	final := Fetch(context.Background(), c, q)
	require.True(t, final.IsSuccess())
	assert.Equal(t, []string{"Bovino"}, final.Data)

	res = Peek(c, q)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, []string{"Bovino"}, res.Data)
}

func TestFetch_CachesFreshResult(t *testing.T) {
	c := newTestClient(t, nil)
	var calls atomic.Int32
	q := countingQuery("species", &calls, []string{"Bovino"})

	first := Fetch(context.Background(), c, q)
	second := Fetch(context.Background(), c, q)

	assert.True(t, first.IsSuccess())
	assert.True(t, second.IsSuccess())
	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_StaleResultRefetches(t *testing.T) {
	c := newTestClient(t, func(cfg *Config) { cfg.StaleTime = 0 })
	var calls atomic.Int32
	q := countingQuery("species", &calls, []string{"Bovino"})

	Fetch(context.Background(), c, q)
	Fetch(context.Background(), c, q)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_DifferentParamsAreDifferentKeys(t *testing.T) {
	c := newTestClient(t, nil)
	var calls atomic.Int32
	fetch := func(context.Context) ([]string, error) {
		calls.Add(1)
		return []string{}, nil
	}

	Fetch(context.Background(), c, Query[[]string]{Key: NewKey("brands", url.Values{"name": {"a"}}), Fetch: fetch})
	Fetch(context.Background(), c, Query[[]string]{Key: NewKey("brands", url.Values{"name": {"b"}}), Fetch: fetch})
	Fetch(context.Background(), c, Query[[]string]{Key: NewKey("brands", url.Values{"name": {"a"}}), Fetch: fetch})
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_CoalescesConcurrentCallers(t *testing.T) {
	c := newTestClient(t, nil)

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	q := Query[[]string]{
		Key: NewKey("corrals", nil),
		Fetch: func(context.Context) ([]string, error) {
			if calls.Add(1) == 1 {
				close(started)
			}
			<-release
			return []string{"C-01"}, nil
		},
		Placeholder: []string{},
	}

	Prefetch(context.Background(), c, q)
	<-started

	var wg sync.WaitGroup
	results := make([]Result[[]string], 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Fetch(context.Background(), c, q)
		}(i)
	}

	// Give the waiters a moment to join the in-flight call.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, res := range results {
		assert.True(t, res.IsSuccess())
		assert.Equal(t, []string{"C-01"}, res.Data)
	}
}

func TestFetch_RetriesOnceThenSucceeds(t *testing.T) {
	c := newTestClient(t, nil)
	var calls atomic.Int32
	q := Query[[]string]{
		Key: NewKey("lines", nil),
		Fetch: func(context.Context) ([]string, error) {
			if calls.Add(1) == 1 {
				return nil, &camalapi.ConnectivityError{Method: "GET", Path: "lines", Err: errors.New("connection reset")}
			}
			return []string{"Línea 1"}, nil
		},
		Placeholder: []string{},
	}

	res := Fetch(context.Background(), c, q)
	require.True(t, res.IsSuccess())
	assert.Equal(t, []string{"Línea 1"}, res.Data)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_ErrorAfterSingleRetryKeepsEnvelopeMessage(t *testing.T) {
	c := newTestClient(t, nil)
	var calls atomic.Int32
	q := Query[[]string]{
		Key: NewKey("carriers", nil),
		Fetch: func(context.Context) ([]string, error) {
			calls.Add(1)
			return nil, &camalapi.HTTPError{Status: 500, Code: 500, Message: "Error al consultar transportistas"}
		},
		Placeholder: []string{},
	}

	res := Fetch(context.Background(), c, q)
	require.True(t, res.IsError())
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "Error al consultar transportistas", res.Message())
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)

	peeked := Peek(c, q)
	assert.True(t, peeked.IsError())
	assert.Equal(t, "Error al consultar transportistas", peeked.Message())
}

func TestFetch_NoRetryWhenDisabled(t *testing.T) {
	c := newTestClient(t, func(cfg *Config) { cfg.Retry = 0 })
	var calls atomic.Int32
	q := Query[int]{
		Key: NewKey("people", nil),
		Fetch: func(context.Context) (int, error) {
			calls.Add(1)
			return 0, errors.New("boom")
		},
	}

	res := Fetch(context.Background(), c, q)
	assert.True(t, res.IsError())
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_ErrorKeepsLastGoodData(t *testing.T) {
	c := newTestClient(t, func(cfg *Config) {
		cfg.StaleTime = 0
		cfg.Retry = 0
	})
	var calls atomic.Int32
	q := Query[[]string]{
		Key: NewKey("vehicles", nil),
		Fetch: func(context.Context) ([]string, error) {
			if calls.Add(1) == 1 {
				return []string{"PBA1234"}, nil
			}
			return nil, errors.New("boom")
		},
		Placeholder: []string{},
	}

	require.True(t, Fetch(context.Background(), c, q).IsSuccess())
	res := Fetch(context.Background(), c, q)
	assert.True(t, res.IsError())
	assert.Equal(t, []string{"PBA1234"}, res.Data)
}

func TestFetch_CallerCancellation(t *testing.T) {
	c := newTestClient(t, nil)
	release := make(chan struct{})
	q := Query[[]string]{
		Key: NewKey("disinfections", nil),
		Fetch: func(context.Context) ([]string, error) {
			<-release
			return []string{}, nil
		},
		Placeholder: []string{},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res := Fetch(ctx, c, q)
	assert.True(t, res.IsError())
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.NotNil(t, res.Data)

	// The flight outlives the caller and still fills the cache.
	close(release)
	after := Fetch(context.Background(), c, q)
	assert.True(t, after.IsSuccess())
}

func TestMutate_InvalidatesOnSuccess(t *testing.T) {
	c := newTestClient(t, nil)
	var listCalls, otherCalls atomic.Int32
	list := countingQuery("brands", &listCalls, []string{"GS"})
	other := countingQuery("species", &otherCalls, []string{"Bovino"})

	Fetch(context.Background(), c, list)
	Fetch(context.Background(), c, other)

	res := Mutate(context.Background(), c, Mutation[string]{
		Run:         func(context.Context) (string, error) { return "created", nil },
		Invalidates: []string{"brands", "introducers"},
	})
	require.True(t, res.IsSuccess())
	assert.Equal(t, "created", res.Data)

	Fetch(context.Background(), c, list)
	Fetch(context.Background(), c, other)
	assert.Equal(t, int32(2), listCalls.Load())
	assert.Equal(t, int32(1), otherCalls.Load())

	peeked := Peek(c, list)
	assert.True(t, peeked.IsSuccess())
}

func TestMutate_FailureKeepsCacheAndDoesNotRetry(t *testing.T) {
	c := newTestClient(t, nil)
	var listCalls, writeCalls atomic.Int32
	list := countingQuery("brands", &listCalls, []string{"GS"})
	Fetch(context.Background(), c, list)

	res := Mutate(context.Background(), c, Mutation[string]{
		Run: func(context.Context) (string, error) {
			writeCalls.Add(1)
			return "", &camalapi.HTTPError{Status: 422, Message: "El nombre ya existe"}
		},
		Invalidates: []string{"brands"},
	})
	assert.True(t, res.IsError())
	assert.Equal(t, "El nombre ya existe", res.Message())
	assert.Equal(t, int32(1), writeCalls.Load())

	Fetch(context.Background(), c, list)
	assert.Equal(t, int32(1), listCalls.Load())
}

func TestInvalidate_DropsEveryKeyUnderTag(t *testing.T) {
	c := newTestClient(t, nil)
	var calls atomic.Int32
	fetch := func(context.Context) ([]string, error) {
		calls.Add(1)
		return []string{}, nil
	}
	a := Query[[]string]{Key: NewKey("corrals", url.Values{"page": {"1"}}), Fetch: fetch}
	b := Query[[]string]{Key: NewKey("corrals", url.Values{"page": {"2"}}), Fetch: fetch}

	Fetch(context.Background(), c, a)
	Fetch(context.Background(), c, b)
	c.Invalidate("corrals")

	assert.True(t, Peek(c, a).IsPending())
	assert.True(t, Peek(c, b).IsPending())

	Fetch(context.Background(), c, a)
	Fetch(context.Background(), c, b)
	assert.Equal(t, int32(4), calls.Load())
}

func TestInvalidate_InFlightResultIsNotCached(t *testing.T) {
	c := newTestClient(t, nil)

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	q := Query[[]string]{
		Key: NewKey("introducers", nil),
		Fetch: func(context.Context) ([]string, error) {
			if calls.Add(1) == 1 {
				close(started)
				<-release
				return []string{"old"}, nil
			}
			return []string{"new"}, nil
		},
		Placeholder: []string{},
	}

	done := make(chan Result[[]string], 1)
	go func() { done <- Fetch(context.Background(), c, q) }()
	<-started

	c.Invalidate("introducers")
	close(release)

	stale := <-done
	assert.Equal(t, []string{"old"}, stale.Data)

	fresh := Fetch(context.Background(), c, q)
	assert.Equal(t, []string{"new"}, fresh.Data)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClose_InFlightFetchCompletesWithoutCaching(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RetryDelay = time.Millisecond
	c, err := NewClient(cfg, zerolog.Nop())
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	q := Query[[]string]{
		Key: NewKey("carriers", nil),
		Fetch: func(context.Context) ([]string, error) {
			close(started)
			<-release
			return []string{"late"}, nil
		},
		Placeholder: []string{},
	}

	done := make(chan Result[[]string], 1)
	go func() { done <- Fetch(context.Background(), c, q) }()
	<-started

	c.Close()
	close(release)

	res := <-done
	require.True(t, res.IsSuccess())
	assert.Equal(t, []string{"late"}, res.Data)

	assert.NotPanics(t, func() {
		c.Invalidate("carriers")
		c.Close()
	})
	assert.True(t, Peek(c, q).IsPending())
}

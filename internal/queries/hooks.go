package queries

import (
	"context"
	"strconv"

	"github.com/edvin/camal/internal/camalapi"
	"github.com/edvin/camal/internal/model"
	"github.com/edvin/camal/internal/query"
)

// Queries binds the API client to one session's query cache.
type Queries struct {
	api *camalapi.Client
	qc  *query.Client
}

func New(api *camalapi.Client, qc *query.Client) *Queries {
	return &Queries{api: api, qc: qc}
}

// Cache returns the query client backing q.
func (q *Queries) Cache() *query.Client { return q.qc }

// Hooks are the cached reads and invalidating writes of one resource.
type Hooks[T, R, F any] struct {
	tag string
	res camalapi.Resource[T, R, F]
	qc  *query.Client
}

func newHooks[T, R, F any](q *Queries, tag string, res camalapi.Resource[T, R, F]) Hooks[T, R, F] {
	return Hooks[T, R, F]{tag: tag, res: res, qc: q.qc}
}

func (h Hooks[T, R, F]) Tag() string { return h.tag }

// ListQuery describes the unfiltered list; its placeholder is an empty list.
func (h Hooks[T, R, F]) ListQuery() query.Query[[]T] {
	return query.Query[[]T]{
		Key: query.NewKey(h.tag, nil).WithScope("all"),
		Fetch: func(ctx context.Context) ([]T, error) {
			env, err := h.res.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			return env.Data, nil
		},
		Placeholder: []T{},
	}
}

// FilterQuery describes one filtered page; its placeholder is an empty page.
func (h Hooks[T, R, F]) FilterQuery(filter F) (query.Query[model.PaginatedEnvelope[T]], error) {
	params, err := camalapi.EncodeFilter(filter)
	if err != nil {
		return query.Query[model.PaginatedEnvelope[T]]{}, err
	}
	return query.Query[model.PaginatedEnvelope[T]]{
		Key: query.NewKey(h.tag, params).WithScope("filter"),
		Fetch: func(ctx context.Context) (model.PaginatedEnvelope[T], error) {
			env, err := h.res.GetByFilter(ctx, filter)
			if err != nil {
				return model.PaginatedEnvelope[T]{}, err
			}
			return *env, nil
		},
		Placeholder: model.PaginatedEnvelope[T]{Data: []T{}},
	}, nil
}

// OneQuery describes a single entity read; its placeholder is the zero entity.
func (h Hooks[T, R, F]) OneQuery(id int) query.Query[T] {
	return query.Query[T]{
		Key: query.NewKey(h.tag, nil).WithScope("id/" + strconv.Itoa(id)),
		Fetch: func(ctx context.Context) (T, error) {
			env, err := h.res.Get(ctx, id)
			if err != nil {
				var zero T
				return zero, err
			}
			return env.Data, nil
		},
	}
}

func (h Hooks[T, R, F]) List(ctx context.Context) query.Result[[]T] {
	return query.Fetch(ctx, h.qc, h.ListQuery())
}

// Filter fetches one page. An unencodable filter is reported as an error
// result carrying the empty page.
func (h Hooks[T, R, F]) Filter(ctx context.Context, filter F) query.Result[model.PaginatedEnvelope[T]] {
	q, err := h.FilterQuery(filter)
	if err != nil {
		return query.Result[model.PaginatedEnvelope[T]]{
			Status: query.StatusError,
			Data:   model.PaginatedEnvelope[T]{Data: []T{}},
			Err:    err,
		}
	}
	return query.Fetch(ctx, h.qc, q)
}

// PollFilter starts the filtered read in the background and returns its
// current state without waiting.
func (h Hooks[T, R, F]) PollFilter(ctx context.Context, filter F) query.Result[model.PaginatedEnvelope[T]] {
	q, err := h.FilterQuery(filter)
	if err != nil {
		return query.Result[model.PaginatedEnvelope[T]]{
			Status: query.StatusError,
			Data:   model.PaginatedEnvelope[T]{Data: []T{}},
			Err:    err,
		}
	}
	query.Prefetch(ctx, h.qc, q)
	return query.Peek(h.qc, q)
}

func (h Hooks[T, R, F]) One(ctx context.Context, id int) query.Result[T] {
	return query.Fetch(ctx, h.qc, h.OneQuery(id))
}

// Create saves a new entity and invalidates every list that can show it.
func (h Hooks[T, R, F]) Create(ctx context.Context, req R) query.Result[T] {
	return query.Mutate(ctx, h.qc, query.Mutation[T]{
		Run: func(ctx context.Context) (T, error) {
			env, err := h.res.Save(ctx, req)
			if err != nil {
				var zero T
				return zero, err
			}
			return env.Data, nil
		},
		Invalidates: InvalidatesFor(h.tag),
	})
}

// Update saves changes to an entity and invalidates every list that can show it.
func (h Hooks[T, R, F]) Update(ctx context.Context, id int, req R) query.Result[T] {
	return query.Mutate(ctx, h.qc, query.Mutation[T]{
		Run: func(ctx context.Context) (T, error) {
			env, err := h.res.Update(ctx, id, req)
			if err != nil {
				var zero T
				return zero, err
			}
			return env.Data, nil
		},
		Invalidates: InvalidatesFor(h.tag),
	})
}

// listQuery adapts a non-CRUD list endpoint into a cached read under tag.
func listQuery[T any](tag, scope string, fetch func(context.Context) (*model.Envelope[[]T], error)) query.Query[[]T] {
	return query.Query[[]T]{
		Key: query.NewKey(tag, nil).WithScope(scope),
		Fetch: func(ctx context.Context) ([]T, error) {
			env, err := fetch(ctx)
			if err != nil {
				return nil, err
			}
			return env.Data, nil
		},
		Placeholder: []T{},
	}
}

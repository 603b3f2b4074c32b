package camalapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/form"

	"github.com/edvin/camal/internal/model"
)

var filterEncoder = form.NewEncoder()

// EncodeFilter turns a filter DTO into query parameters. Zero-valued fields
// tagged omitempty are dropped, so equal filters always encode equally.
func EncodeFilter(filter any) (url.Values, error) {
	if filter == nil {
		return url.Values{}, nil
	}
	values, err := filterEncoder.Encode(filter)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}
	return values, nil
}

// Resource exposes the CRUD endpoints shared by every camal entity.
// T is the entity, R its request DTO and F its filter DTO.
type Resource[T, R, F any] struct {
	client *Client
	path   string
}

func NewResource[T, R, F any](c *Client, path string) Resource[T, R, F] {
	return Resource[T, R, F]{client: c, path: path}
}

// Get returns a single entity by ID.
func (r Resource[T, R, F]) Get(ctx context.Context, id int) (*model.Envelope[T], error) {
	var env model.Envelope[T]
	if err := r.client.Do(ctx, http.MethodGet, r.path+"/"+strconv.Itoa(id), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// GetAll returns every entity of the resource.
func (r Resource[T, R, F]) GetAll(ctx context.Context) (*model.Envelope[[]T], error) {
	return getList[T](ctx, r.client, r.path, nil)
}

// GetByFilter returns one page of entities matching filter.
func (r Resource[T, R, F]) GetByFilter(ctx context.Context, filter F) (*model.PaginatedEnvelope[T], error) {
	query, err := EncodeFilter(filter)
	if err != nil {
		return nil, err
	}
	var env model.PaginatedEnvelope[T]
	if err := r.client.Do(ctx, http.MethodGet, r.path+"/filter", query, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		env.Data = []T{}
	}
	return &env, nil
}

// Save creates an entity.
func (r Resource[T, R, F]) Save(ctx context.Context, req R) (*model.Envelope[T], error) {
	var env model.Envelope[T]
	if err := r.client.Do(ctx, http.MethodPost, r.path, nil, req, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Update replaces the editable fields of an entity.
func (r Resource[T, R, F]) Update(ctx context.Context, id int, req R) (*model.Envelope[T], error) {
	var env model.Envelope[T]
	if err := r.client.Do(ctx, http.MethodPut, r.path+"/"+strconv.Itoa(id), nil, req, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func getList[T any](ctx context.Context, c *Client, path string, query url.Values) (*model.Envelope[[]T], error) {
	var env model.Envelope[[]T]
	if err := c.Do(ctx, http.MethodGet, path, query, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		env.Data = []T{}
	}
	return &env, nil
}

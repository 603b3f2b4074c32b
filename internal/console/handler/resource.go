package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/edvin/camal/internal/console/request"
	"github.com/edvin/camal/internal/console/session"
	"github.com/edvin/camal/internal/queries"
)

// Resource serves the list, detail and form endpoints of one dashboard
// page. T is the entity, R its create/update request and F its filter.
type Resource[T, R, F any] struct {
	guard
	hooks func(*queries.Queries) queries.Hooks[T, R, F]
}

func NewResource[T, R, F any](sessions *session.Registry, cookies Cookies, hooks func(*queries.Queries) queries.Hooks[T, R, F]) *Resource[T, R, F] {
	return &Resource[T, R, F]{
		guard: guard{sessions: sessions, cookies: cookies},
		hooks: hooks,
	}
}

// List returns one filtered page. With ?poll=1 it answers immediately with
// whatever is cached and refreshes in the background.
func (h *Resource[T, R, F]) List(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queriesFor(w, r)
	if !ok {
		return
	}

	var filter F
	if err := request.DecodeQuery(r, &filter); err != nil {
		writeInputError(w, err)
		return
	}
	if p, ok := any(&filter).(interface{ Normalize() }); ok {
		p.Normalize()
	}

	hooks := h.hooks(q)
	if r.URL.Query().Get("poll") != "" {
		writeResult(h.guard, w, r, http.StatusOK, hooks.PollFilter(r.Context(), filter))
		return
	}
	writeResult(h.guard, w, r, http.StatusOK, hooks.Filter(r.Context(), filter))
}

// All returns the unpaginated list, used to fill selects.
func (h *Resource[T, R, F]) All(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queriesFor(w, r)
	if !ok {
		return
	}
	writeResult(h.guard, w, r, http.StatusOK, h.hooks(q).List(r.Context()))
}

func (h *Resource[T, R, F]) Get(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queriesFor(w, r)
	if !ok {
		return
	}

	id, err := request.ID(r, "id")
	if err != nil {
		writeInputError(w, err)
		return
	}
	writeResult(h.guard, w, r, http.StatusOK, h.hooks(q).One(r.Context(), id))
}

func (h *Resource[T, R, F]) Create(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queriesFor(w, r)
	if !ok {
		return
	}

	var req R
	if err := request.Decode(r, &req); err != nil {
		writeInputError(w, err)
		return
	}
	hooks := h.hooks(q)
	res := hooks.Create(r.Context(), req)
	if res.IsSuccess() {
		zerolog.Ctx(r.Context()).Info().Str("resource", hooks.Tag()).Msg("created")
	}
	writeResult(h.guard, w, r, http.StatusCreated, res)
}

func (h *Resource[T, R, F]) Update(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queriesFor(w, r)
	if !ok {
		return
	}

	id, err := request.ID(r, "id")
	if err != nil {
		writeInputError(w, err)
		return
	}

	var req R
	if err := request.Decode(r, &req); err != nil {
		writeInputError(w, err)
		return
	}
	hooks := h.hooks(q)
	res := hooks.Update(r.Context(), id, req)
	if res.IsSuccess() {
		zerolog.Ctx(r.Context()).Info().Str("resource", hooks.Tag()).Int("id", id).Msg("updated")
	}
	writeResult(h.guard, w, r, http.StatusOK, res)
}

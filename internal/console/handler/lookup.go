package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/camal/internal/console/request"
	"github.com/edvin/camal/internal/console/response"
	"github.com/edvin/camal/internal/console/session"
	"github.com/edvin/camal/internal/queries"
	"github.com/edvin/camal/internal/query"
)

// Lookup serves the dependent selects forms load as the user picks
// values: brands of an introducer, lines of a specie and so on.
type Lookup struct {
	guard
}

func NewLookup(sessions *session.Registry, cookies Cookies) *Lookup {
	return &Lookup{guard: guard{sessions: sessions, cookies: cookies}}
}

func (h *Lookup) IntroducerBrands(w http.ResponseWriter, r *http.Request) {
	byID(h, w, r, (*queries.Queries).IntroducerBrands)
}

func (h *Lookup) UnassignedBrands(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queriesFor(w, r)
	if !ok {
		return
	}
	writeResult(h.guard, w, r, http.StatusOK, q.UnassignedBrands(r.Context()))
}

func (h *Lookup) BrandsByIntroducer(w http.ResponseWriter, r *http.Request) {
	byID(h, w, r, (*queries.Queries).BrandsByIntroducer)
}

func (h *Lookup) BrandsBySpecie(w http.ResponseWriter, r *http.Request) {
	byID(h, w, r, (*queries.Queries).BrandsBySpecie)
}

func (h *Lookup) LinesBySpecie(w http.ResponseWriter, r *http.Request) {
	byID(h, w, r, (*queries.Queries).LinesBySpecie)
}

func (h *Lookup) CorralGroupsByLine(w http.ResponseWriter, r *http.Request) {
	byID(h, w, r, (*queries.Queries).CorralGroupsByLine)
}

func (h *Lookup) CorralsByGroup(w http.ResponseWriter, r *http.Request) {
	byID(h, w, r, (*queries.Queries).CorralsByGroup)
}

func (h *Lookup) VehicleByPlate(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queriesFor(w, r)
	if !ok {
		return
	}

	plate := chi.URLParam(r, "plate")
	if plate == "" {
		response.WriteError(w, http.StatusBadRequest, "missing required plate")
		return
	}
	writeResult(h.guard, w, r, http.StatusOK, q.VehicleByPlate(r.Context(), plate))
}

func (h *Lookup) Profile(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queriesFor(w, r)
	if !ok {
		return
	}
	writeResult(h.guard, w, r, http.StatusOK, q.Profile(r.Context()))
}

// Catalogs loads every lookup list at once.
func (h *Lookup) Catalogs(w http.ResponseWriter, r *http.Request) {
	q, ok := h.queriesFor(w, r)
	if !ok {
		return
	}

	catalogs, err := q.LoadCatalogs(r.Context())
	res := query.Result[queries.Catalogs]{Status: query.StatusSuccess, Data: catalogs}
	if err != nil {
		res.Status = query.StatusError
		res.Err = err
	}
	writeResult(h.guard, w, r, http.StatusOK, res)
}

func byID[T any](h *Lookup, w http.ResponseWriter, r *http.Request, read func(*queries.Queries, context.Context, int) query.Result[T]) {
	q, ok := h.queriesFor(w, r)
	if !ok {
		return
	}

	id, err := request.ID(r, "id")
	if err != nil {
		writeInputError(w, err)
		return
	}
	writeResult(h.guard, w, r, http.StatusOK, read(q, r.Context(), id))
}

package queries

import "github.com/edvin/camal/internal/model"

func (q *Queries) Species() Hooks[model.Specie, model.SpecieRequest, model.SpecieFilter] {
	return newHooks(q, TagSpecies, q.api.Species())
}

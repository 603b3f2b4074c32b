package queries

import "github.com/edvin/camal/internal/model"

func (q *Queries) People() Hooks[model.Person, model.PersonRequest, model.PersonFilter] {
	return newHooks(q, TagPeople, q.api.People())
}

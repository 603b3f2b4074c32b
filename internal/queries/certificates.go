package queries

import "github.com/edvin/camal/internal/model"

func (q *Queries) Disinfections() Hooks[model.Disinfection, model.DisinfectionRequest, model.DisinfectionFilter] {
	return newHooks(q, TagDisinfections, q.api.Disinfections())
}

func (q *Queries) ConditionTransports() Hooks[model.ConditionTransport, model.ConditionTransportRequest, model.ConditionTransportFilter] {
	return newHooks(q, TagConditionTransports, q.api.ConditionTransports())
}

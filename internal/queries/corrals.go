package queries

import (
	"context"
	"fmt"

	"github.com/edvin/camal/internal/model"
	"github.com/edvin/camal/internal/query"
)

func (q *Queries) CorralGroups() Hooks[model.CorralGroup, model.CorralGroupRequest, model.CorralGroupFilter] {
	return newHooks(q, TagCorralGroups, q.api.CorralGroups())
}

func (q *Queries) CorralGroupsByLine(ctx context.Context, lineID int) query.Result[[]model.CorralGroup] {
	return query.Fetch(ctx, q.qc, listQuery(TagCorralGroups, fmt.Sprintf("line/%d", lineID),
		func(ctx context.Context) (*model.Envelope[[]model.CorralGroup], error) {
			return q.api.CorralGroupsByLine(ctx, lineID)
		}))
}

func (q *Queries) Corrals() Hooks[model.Corral, model.CorralRequest, model.CorralFilter] {
	return newHooks(q, TagCorrals, q.api.Corrals())
}

func (q *Queries) CorralsByGroup(ctx context.Context, groupID int) query.Result[[]model.Corral] {
	return query.Fetch(ctx, q.qc, listQuery(TagCorrals, fmt.Sprintf("corral-group/%d", groupID),
		func(ctx context.Context) (*model.Envelope[[]model.Corral], error) {
			return q.api.CorralsByGroup(ctx, groupID)
		}))
}

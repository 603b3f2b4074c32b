package queries

import (
	"context"
	"fmt"

	"github.com/edvin/camal/internal/model"
	"github.com/edvin/camal/internal/query"
)

func (q *Queries) Lines() Hooks[model.Line, model.LineRequest, model.LineFilter] {
	return newHooks(q, TagLines, q.api.Lines())
}

func (q *Queries) LinesBySpecie(ctx context.Context, specieID int) query.Result[[]model.Line] {
	return query.Fetch(ctx, q.qc, listQuery(TagLines, fmt.Sprintf("specie/%d", specieID),
		func(ctx context.Context) (*model.Envelope[[]model.Line], error) {
			return q.api.LinesBySpecie(ctx, specieID)
		}))
}

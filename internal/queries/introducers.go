package queries

import (
	"context"
	"fmt"

	"github.com/edvin/camal/internal/model"
	"github.com/edvin/camal/internal/query"
)

func (q *Queries) Introducers() Hooks[model.Introducer, model.IntroducerRequest, model.IntroducerFilter] {
	return newHooks(q, TagIntroducers, q.api.Introducers())
}

// IntroducerBrands is cached under the brands tag so brand writes refresh it.
func (q *Queries) IntroducerBrands(ctx context.Context, introducerID int) query.Result[[]model.Brand] {
	return query.Fetch(ctx, q.qc, listQuery(TagBrands, fmt.Sprintf("introducer/%d", introducerID),
		func(ctx context.Context) (*model.Envelope[[]model.Brand], error) {
			return q.api.IntroducerBrands(ctx, introducerID)
		}))
}

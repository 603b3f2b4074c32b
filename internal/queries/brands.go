package queries

import (
	"context"
	"fmt"

	"github.com/edvin/camal/internal/model"
	"github.com/edvin/camal/internal/query"
)

func (q *Queries) Brands() Hooks[model.Brand, model.BrandRequest, model.BrandFilter] {
	return newHooks(q, TagBrands, q.api.Brands())
}

func (q *Queries) UnassignedBrands(ctx context.Context) query.Result[[]model.Brand] {
	return query.Fetch(ctx, q.qc, listQuery(TagBrands, "unassigned", q.api.BrandsWithoutIntroducer))
}

// BrandsByIntroducer lists the brands of an introducer through the brands
// resource.
func (q *Queries) BrandsByIntroducer(ctx context.Context, introducerID int) query.Result[[]model.Brand] {
	return query.Fetch(ctx, q.qc, listQuery(TagBrands, fmt.Sprintf("by-introducer/%d", introducerID),
		func(ctx context.Context) (*model.Envelope[[]model.Brand], error) {
			return q.api.BrandsByIntroducer(ctx, introducerID)
		}))
}

func (q *Queries) BrandsBySpecie(ctx context.Context, specieID int) query.Result[[]model.Brand] {
	return query.Fetch(ctx, q.qc, listQuery(TagBrands, fmt.Sprintf("specie/%d", specieID),
		func(ctx context.Context) (*model.Envelope[[]model.Brand], error) {
			return q.api.BrandsBySpecie(ctx, specieID)
		}))
}

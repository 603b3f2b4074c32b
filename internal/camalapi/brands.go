package camalapi

import (
	"context"
	"fmt"

	"github.com/edvin/camal/internal/model"
)

const BrandsPath = "brands"

func (c *Client) Brands() Resource[model.Brand, model.BrandRequest, model.BrandFilter] {
	return NewResource[model.Brand, model.BrandRequest, model.BrandFilter](c, BrandsPath)
}

// BrandsWithoutIntroducer returns brands not yet assigned to an introducer.
func (c *Client) BrandsWithoutIntroducer(ctx context.Context) (*model.Envelope[[]model.Brand], error) {
	return getList[model.Brand](ctx, c, BrandsPath+"/unassigned", nil)
}

// BrandsByIntroducer returns the brands an introducer owns.
func (c *Client) BrandsByIntroducer(ctx context.Context, introducerID int) (*model.Envelope[[]model.Brand], error) {
	return getList[model.Brand](ctx, c, fmt.Sprintf("%s/introducer/%d", BrandsPath, introducerID), nil)
}

// BrandsBySpecie returns the brands that cover a specie.
func (c *Client) BrandsBySpecie(ctx context.Context, specieID int) (*model.Envelope[[]model.Brand], error) {
	return getList[model.Brand](ctx, c, fmt.Sprintf("%s/specie/%d", BrandsPath, specieID), nil)
}

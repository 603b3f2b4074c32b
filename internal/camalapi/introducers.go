package camalapi

import (
	"context"
	"fmt"

	"github.com/edvin/camal/internal/model"
)

const IntroducersPath = "introducers"

func (c *Client) Introducers() Resource[model.Introducer, model.IntroducerRequest, model.IntroducerFilter] {
	return NewResource[model.Introducer, model.IntroducerRequest, model.IntroducerFilter](c, IntroducersPath)
}

// IntroducerBrands returns the brands registered to an introducer.
func (c *Client) IntroducerBrands(ctx context.Context, introducerID int) (*model.Envelope[[]model.Brand], error) {
	return getList[model.Brand](ctx, c, fmt.Sprintf("%s/%d/brands", IntroducersPath, introducerID), nil)
}

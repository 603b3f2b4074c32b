package camalapi

import (
	"context"
	"fmt"

	"github.com/edvin/camal/internal/model"
)

const LinesPath = "lines"

func (c *Client) Lines() Resource[model.Line, model.LineRequest, model.LineFilter] {
	return NewResource[model.Line, model.LineRequest, model.LineFilter](c, LinesPath)
}

// LinesBySpecie returns the lines that process a specie.
func (c *Client) LinesBySpecie(ctx context.Context, specieID int) (*model.Envelope[[]model.Line], error) {
	return getList[model.Line](ctx, c, fmt.Sprintf("%s/specie/%d", LinesPath, specieID), nil)
}

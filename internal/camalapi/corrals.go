package camalapi

import (
	"context"
	"fmt"

	"github.com/edvin/camal/internal/model"
)

const (
	CorralGroupsPath = "corral-groups"
	CorralsPath      = "corrals"
)

func (c *Client) CorralGroups() Resource[model.CorralGroup, model.CorralGroupRequest, model.CorralGroupFilter] {
	return NewResource[model.CorralGroup, model.CorralGroupRequest, model.CorralGroupFilter](c, CorralGroupsPath)
}

// CorralGroupsByLine returns the corral groups of a line.
func (c *Client) CorralGroupsByLine(ctx context.Context, lineID int) (*model.Envelope[[]model.CorralGroup], error) {
	return getList[model.CorralGroup](ctx, c, fmt.Sprintf("%s/line/%d", CorralGroupsPath, lineID), nil)
}

func (c *Client) Corrals() Resource[model.Corral, model.CorralRequest, model.CorralFilter] {
	return NewResource[model.Corral, model.CorralRequest, model.CorralFilter](c, CorralsPath)
}

// CorralsByGroup returns the corrals in a corral group.
func (c *Client) CorralsByGroup(ctx context.Context, groupID int) (*model.Envelope[[]model.Corral], error) {
	return getList[model.Corral](ctx, c, fmt.Sprintf("%s/corral-group/%d", CorralsPath, groupID), nil)
}

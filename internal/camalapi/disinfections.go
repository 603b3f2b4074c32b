package camalapi

import "github.com/edvin/camal/internal/model"

const DisinfectionsPath = "disinfections"

func (c *Client) Disinfections() Resource[model.Disinfection, model.DisinfectionRequest, model.DisinfectionFilter] {
	return NewResource[model.Disinfection, model.DisinfectionRequest, model.DisinfectionFilter](c, DisinfectionsPath)
}

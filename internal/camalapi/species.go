package camalapi

import "github.com/edvin/camal/internal/model"

const SpeciesPath = "species"

func (c *Client) Species() Resource[model.Specie, model.SpecieRequest, model.SpecieFilter] {
	return NewResource[model.Specie, model.SpecieRequest, model.SpecieFilter](c, SpeciesPath)
}

package camalapi

import "github.com/edvin/camal/internal/model"

const PeoplePath = "people"

func (c *Client) People() Resource[model.Person, model.PersonRequest, model.PersonFilter] {
	return NewResource[model.Person, model.PersonRequest, model.PersonFilter](c, PeoplePath)
}

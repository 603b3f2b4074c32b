package camalapi

import "github.com/edvin/camal/internal/model"

const CarriersPath = "carriers"

func (c *Client) Carriers() Resource[model.Carrier, model.CarrierRequest, model.CarrierFilter] {
	return NewResource[model.Carrier, model.CarrierRequest, model.CarrierFilter](c, CarriersPath)
}

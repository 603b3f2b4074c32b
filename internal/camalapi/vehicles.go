package camalapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edvin/camal/internal/model"
)

const (
	VehicleTypesPath = "vehicle-types"
	VehiclesPath     = "vehicles"
)

func (c *Client) VehicleTypes() Resource[model.VehicleType, model.VehicleTypeRequest, model.VehicleTypeFilter] {
	return NewResource[model.VehicleType, model.VehicleTypeRequest, model.VehicleTypeFilter](c, VehicleTypesPath)
}

func (c *Client) Vehicles() Resource[model.Vehicle, model.VehicleRequest, model.VehicleFilter] {
	return NewResource[model.Vehicle, model.VehicleRequest, model.VehicleFilter](c, VehiclesPath)
}

// VehicleByPlate looks a vehicle up by its licence plate.
func (c *Client) VehicleByPlate(ctx context.Context, plate string) (*model.Envelope[model.Vehicle], error) {
	var env model.Envelope[model.Vehicle]
	query := url.Values{"plate": {plate}}
	if err := c.Do(ctx, http.MethodGet, VehiclesPath+"/plate", query, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

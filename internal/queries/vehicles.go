package queries

import (
	"context"
	"net/url"

	"github.com/edvin/camal/internal/model"
	"github.com/edvin/camal/internal/query"
)

func (q *Queries) VehicleTypes() Hooks[model.VehicleType, model.VehicleTypeRequest, model.VehicleTypeFilter] {
	return newHooks(q, TagVehicleTypes, q.api.VehicleTypes())
}

func (q *Queries) Vehicles() Hooks[model.Vehicle, model.VehicleRequest, model.VehicleFilter] {
	return newHooks(q, TagVehicles, q.api.Vehicles())
}

func (q *Queries) VehicleByPlate(ctx context.Context, plate string) query.Result[model.Vehicle] {
	return query.Fetch(ctx, q.qc, query.Query[model.Vehicle]{
		Key: query.NewKey(TagVehicles, url.Values{"plate": {plate}}).WithScope("plate"),
		Fetch: func(ctx context.Context) (model.Vehicle, error) {
			env, err := q.api.VehicleByPlate(ctx, plate)
			if err != nil {
				return model.Vehicle{}, err
			}
			return env.Data, nil
		},
	})
}

func (q *Queries) Carriers() Hooks[model.Carrier, model.CarrierRequest, model.CarrierFilter] {
	return newHooks(q, TagCarriers, q.api.Carriers())
}

package queries

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/edvin/camal/internal/model"
)

// Catalogs are the lookup lists most forms need for their selects.
type Catalogs struct {
	Species      []model.Specie      `json:"species"`
	Lines        []model.Line        `json:"lines"`
	VehicleTypes []model.VehicleType `json:"vehicleTypes"`
	CorralGroups []model.CorralGroup `json:"corralGroups"`
}

// LoadCatalogs warms the cache with every lookup list concurrently. Lists
// that fail keep their empty placeholder; the first error is returned.
func (q *Queries) LoadCatalogs(ctx context.Context) (Catalogs, error) {
	c := Catalogs{
		Species:      []model.Specie{},
		Lines:        []model.Line{},
		VehicleTypes: []model.VehicleType{},
		CorralGroups: []model.CorralGroup{},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res := q.Species().List(ctx)
		c.Species = res.Data
		if res.IsError() {
			return fmt.Errorf("load species: %w", res.Err)
		}
		return nil
	})
	g.Go(func() error {
		res := q.Lines().List(ctx)
		c.Lines = res.Data
		if res.IsError() {
			return fmt.Errorf("load lines: %w", res.Err)
		}
		return nil
	})
	g.Go(func() error {
		res := q.VehicleTypes().List(ctx)
		c.VehicleTypes = res.Data
		if res.IsError() {
			return fmt.Errorf("load vehicle types: %w", res.Err)
		}
		return nil
	})
	g.Go(func() error {
		res := q.CorralGroups().List(ctx)
		c.CorralGroups = res.Data
		if res.IsError() {
			return fmt.Errorf("load corral groups: %w", res.Err)
		}
		return nil
	})

	err := g.Wait()
	return c, err
}

package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/vehicle"
)

// routeResources are the vehicle and driver bound to a route, nil when unbound.
type routeResources struct {
	vehicle *vehicle.Vehicle
	driver  *driver.Driver
}

func loadRouteResources(ctx context.Context, uow RouteUoW, r *route.Route) (routeResources, error) {
	var res routeResources
	if id := r.VehicleID(); id != nil {
		v, err := uow.VehicleRepository().Get(ctx, *id)
		if err != nil {
			return routeResources{}, err
		}
		res.vehicle = v
	}
	if id := r.DriverID(); id != nil {
		d, err := uow.DriverRepository().Get(ctx, *id)
		if err != nil {
			return routeResources{}, err
		}
		res.driver = d
	}
	return res, nil
}

// start binds an idle vehicle and an available driver to a route being
// started. Neither is changed when either check fails.
func (res routeResources) start() error {
	if res.vehicle != nil {
		if _, err := res.vehicle.Status().StartRoute(); err != nil {
			return err
		}
	}
	if res.driver != nil {
		if err := res.driver.StartRoute(); err != nil {
			return err
		}
	}
	if res.vehicle != nil {
		return res.vehicle.StartRoute()
	}
	return nil
}

// release frees the vehicle and the driver at the end of a route.
func (res routeResources) release() error {
	if res.vehicle != nil {
		if err := res.vehicle.Release(); err != nil {
			return err
		}
	}
	if res.driver != nil {
		res.driver.Release()
	}
	return nil
}

func (res routeResources) save(ctx context.Context, uow RouteUoW) error {
	if res.vehicle != nil {
		if err := uow.VehicleRepository().Update(ctx, res.vehicle); err != nil {
			return err
		}
	}
	if res.driver != nil {
		if err := uow.DriverRepository().Update(ctx, res.driver); err != nil {
			return err
		}
	}
	return nil
}

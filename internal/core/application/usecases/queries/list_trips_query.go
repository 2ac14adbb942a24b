// Package queries contains the read side of the fleet engine. Handlers read
// straight from the database with SQL and return flat read models; they never
// load aggregates or take part in a unit of work.
package queries

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/pkg/guard"
)

var ErrListTripsQueryIsNotConstructed = errors.New(
	"ListTripsQuery must be created via NewListTripsQuery constructor",
)

// ListTripsQuery lists trips newest first, optionally narrowed to one status.
//
// Example:
//
//	query, err := NewListTripsQuery(trip.Dispatched)
//	if err != nil {
//	    return err
//	}
//	trips, err := handler.Handle(ctx, query)
type ListTripsQuery struct {
	status trip.Status

	guard guard.ConstructorGuard
}

// NewListTripsQuery creates the query. trip.Unknown lists every status.
func NewListTripsQuery(status trip.Status) (ListTripsQuery, error) {
	if status != trip.Unknown {
		if err := status.Validate(); err != nil {
			return ListTripsQuery{}, err
		}
	}
	return ListTripsQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTripsQuery) Validate() error {
	return q.guard.Validate(ErrListTripsQueryIsNotConstructed)
}

// Status is the filter, or trip.Unknown for none.
func (q ListTripsQuery) Status() trip.Status {
	return q.status
}

// ListTripsQueryResponse is the trip read model.
type ListTripsQueryResponse struct {
	ID                kernel.UUID
	VehicleID         kernel.UUID
	DriverID          kernel.UUID
	CargoWeightKg     float64
	CargoDescription  string
	Origin            string
	Destination       string
	EstimatedFuelCost float64
	Revenue           float64
	Status            trip.Status
	StartOdometer     *float64
	EndOdometer       *float64
	TripStartTime     *time.Time
	TripEndTime       *time.Time
	CreatedAt         time.Time
}

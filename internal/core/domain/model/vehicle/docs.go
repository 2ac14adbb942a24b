// Package vehicle provides the Vehicle aggregate of the fleet model.
//
// The package includes:
//   - Vehicle: the aggregate root tracking capacity, odometer and availability
//   - Status: the closed set of vehicle states and their transitions
//
// Key business rules:
//   - A vehicle is claimed by at most one dispatched trip, recorded in ActiveTripID
//   - The odometer never decreases
//   - A vehicle on a trip cannot be sent to the shop or retired
//   - Only the trip that claimed a vehicle can release it
package vehicle

// Package services provides domain services that coordinate the fleet
// aggregates. Each service works on already loaded snapshots and mutates them
// in memory; persisting the result atomically is the caller's concern.
//
// The package includes:
//   - EligibilityValidator: decides whether a vehicle and driver may take a trip
//   - TripLifecycle: the linked trip, vehicle and driver transitions
//   - MaintenanceGate: opening and closing maintenance against vehicle availability
//   - LicenseSweeper: suspension of drivers whose license has lapsed
package services

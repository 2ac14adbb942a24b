package services

import (
	"errors"
	"fmt"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/vehicle"
)

// Sentinels for eligibility violations, matched with errors.Is.
var (
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
	ErrDriverUnavailable  = errors.New("driver unavailable")
	ErrLicenseExpired     = errors.New("license expired")
)

// CapacityExceededError reports cargo heavier than the vehicle can carry.
type CapacityExceededError struct {
	CargoWeightKg float64
	MaxCapacityKg float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: cargo %.1f kg, max %.1f kg", ErrCapacityExceeded, e.CargoWeightKg, e.MaxCapacityKg)
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

// VehicleUnavailableError reports a vehicle that cannot be claimed.
type VehicleUnavailableError struct {
	Status  vehicle.Status
	Claimed bool
}

func (e *VehicleUnavailableError) Error() string {
	if e.Claimed {
		return fmt.Sprintf("%s: status %s, claimed by another trip", ErrVehicleUnavailable, e.Status)
	}
	return fmt.Sprintf("%s: status %s", ErrVehicleUnavailable, e.Status)
}

func (e *VehicleUnavailableError) Unwrap() error { return ErrVehicleUnavailable }

// DriverUnavailableError reports a driver outside the eligible status set or
// already claimed by a trip.
type DriverUnavailableError struct {
	Status  driver.Status
	Claimed bool
}

func (e *DriverUnavailableError) Error() string {
	if e.Claimed {
		return fmt.Sprintf("%s: status %s, claimed by another trip", ErrDriverUnavailable, e.Status)
	}
	return fmt.Sprintf("%s: status %s", ErrDriverUnavailable, e.Status)
}

func (e *DriverUnavailableError) Unwrap() error { return ErrDriverUnavailable }

// LicenseExpiredError reports a driver license that lapsed before the check.
type LicenseExpiredError struct {
	ExpiryDate time.Time
}

func (e *LicenseExpiredError) Error() string {
	return fmt.Sprintf("%s: expired on %s", ErrLicenseExpired, e.ExpiryDate.Format(time.DateOnly))
}

func (e *LicenseExpiredError) Unwrap() error { return ErrLicenseExpired }

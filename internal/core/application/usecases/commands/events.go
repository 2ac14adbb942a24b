package commands

import (
	"strconv"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
)

func tripEvent(eventType string, t *trip.Trip, now time.Time) kernel.Event {
	e := kernel.NewEvent(eventType, t.ID(), now).
		With("status", t.Status().String()).
		With("vehicle_id", t.VehicleID().String()).
		With("driver_id", t.DriverID().String()).
		With("cargo_weight_kg", strconv.FormatFloat(t.CargoWeightKg(), 'f', -1, 64))
	if t.EndOdometer() != nil {
		e = e.With("end_odometer", strconv.FormatFloat(*t.EndOdometer(), 'f', -1, 64))
	} else if t.StartOdometer() != nil {
		e = e.With("start_odometer", strconv.FormatFloat(*t.StartOdometer(), 'f', -1, 64))
	}
	return e
}

func maintenanceEvent(eventType string, l *maintenance.MaintenanceLog, v *vehicle.Vehicle, now time.Time) kernel.Event {
	return kernel.NewEvent(eventType, l.ID(), now).
		With("status", l.Status().String()).
		With("vehicle_id", v.ID().String()).
		With("vehicle_status", v.Status().String())
}

func vehicleEvent(eventType string, v *vehicle.Vehicle, now time.Time) kernel.Event {
	return kernel.NewEvent(eventType, v.ID(), now).
		With("status", v.Status().String())
}

func driverEvent(eventType string, d *driver.Driver, now time.Time) kernel.Event {
	return kernel.NewEvent(eventType, d.ID(), now).
		With("status", d.Status().String()).
		With("license_expiry_date", d.LicenseExpiryDate().Format(time.DateOnly))
}

func expenseEvent(e *expense.Expense, now time.Time) kernel.Event {
	event := kernel.NewEvent(kernel.EventExpenseRecorded, e.ID(), now).
		With("vehicle_id", e.VehicleID().String()).
		With("expense_type", e.Category().String()).
		With("amount", strconv.FormatFloat(e.Amount(), 'f', -1, 64))
	if e.TripID() != nil {
		event = event.With("trip_id", e.TripID().String())
	}
	return event
}

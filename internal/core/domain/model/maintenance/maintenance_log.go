package maintenance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/errs"
	"fleetflow/internal/pkg/guard"
)

var (
	// ErrMaintenanceLogIsNotConstructed is returned when a MaintenanceLog was not created via a constructor.
	ErrMaintenanceLogIsNotConstructed = errors.New("maintenance log must be created via NewMaintenanceLog or RestoreMaintenanceLog")

	// ErrMaintenanceAlreadyPending is returned when a vehicle already has an open log.
	ErrMaintenanceAlreadyPending = errors.New("vehicle already has a pending maintenance log")
)

// MaintenanceLog records one service visit of a vehicle.
type MaintenanceLog struct {
	id                 kernel.UUID
	vehicleID          kernel.UUID
	description        string
	cost               float64
	serviceDate        time.Time
	status             Status
	completedDate      *time.Time
	technicianName     string
	priorVehicleStatus vehicle.Status

	version      int64
	loadedStatus Status

	guard guard.ConstructorGuard
}

// NewMaintenanceLog opens a Pending log. priorVehicleStatus is the status the
// vehicle had before it was sent to the shop.
func NewMaintenanceLog(
	id kernel.UUID,
	vehicleID kernel.UUID,
	description string,
	cost float64,
	serviceDate time.Time,
	priorVehicleStatus vehicle.Status,
) (*MaintenanceLog, error) {
	l := &MaintenanceLog{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setIDs(id, vehicleID),
		l.setDescription(description),
		l.setCost(cost),
		l.setServiceDate(serviceDate),
		l.setPriorVehicleStatus(priorVehicleStatus),
	); err != nil {
		return nil, err
	}

	l.loadedStatus = l.status
	return l, nil
}

// RestoreMaintenanceLog rebuilds a MaintenanceLog from persisted state.
func RestoreMaintenanceLog(
	id kernel.UUID,
	vehicleID kernel.UUID,
	description string,
	cost float64,
	serviceDate time.Time,
	status Status,
	completedDate *time.Time,
	technicianName string,
	priorVehicleStatus vehicle.Status,
	version int64,
) (*MaintenanceLog, error) {
	l := &MaintenanceLog{
		completedDate:  completedDate,
		technicianName: technicianName,
		version:        version,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setIDs(id, vehicleID),
		l.setDescription(description),
		l.setCost(cost),
		l.setServiceDate(serviceDate),
		l.setPriorVehicleStatus(priorVehicleStatus),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	l.status = status
	l.loadedStatus = status
	return l, nil
}

// Validate ensures the log was built by a constructor.
func (l *MaintenanceLog) Validate() error {
	if l == nil {
		return ErrMaintenanceLogIsNotConstructed
	}
	return l.guard.Validate(ErrMaintenanceLogIsNotConstructed)
}

func (l *MaintenanceLog) ID() kernel.UUID                    { return l.id }
func (l *MaintenanceLog) VehicleID() kernel.UUID             { return l.vehicleID }
func (l *MaintenanceLog) Description() string                { return l.description }
func (l *MaintenanceLog) Cost() float64                      { return l.cost }
func (l *MaintenanceLog) ServiceDate() time.Time             { return l.serviceDate }
func (l *MaintenanceLog) Status() Status                     { return l.status }
func (l *MaintenanceLog) CompletedDate() *time.Time          { return l.completedDate }
func (l *MaintenanceLog) TechnicianName() string             { return l.technicianName }
func (l *MaintenanceLog) PriorVehicleStatus() vehicle.Status { return l.priorVehicleStatus }
func (l *MaintenanceLog) Version() int64                     { return l.version }
func (l *MaintenanceLog) LoadedStatus() Status               { return l.loadedStatus }

// Complete closes the log on completedDate.
func (l *MaintenanceLog) Complete(completedDate time.Time, technicianName string) error {
	next, err := l.status.Complete()
	if err != nil {
		return err
	}
	if completedDate.IsZero() {
		return errs.NewValueIsRequiredError("completedDate")
	}

	done := completedDate.UTC()
	l.status = next
	l.completedDate = &done
	l.technicianName = strings.TrimSpace(technicianName)
	return nil
}

func (l *MaintenanceLog) setIDs(id, vehicleID kernel.UUID) error {
	if err := errors.Join(id.Validate(), vehicleID.Validate()); err != nil {
		return err
	}
	l.id = id
	l.vehicleID = vehicleID
	return nil
}

func (l *MaintenanceLog) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	l.description = description
	return nil
}

func (l *MaintenanceLog) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%.2f is negative", cost))
	}
	l.cost = cost
	return nil
}

func (l *MaintenanceLog) setServiceDate(serviceDate time.Time) error {
	if serviceDate.IsZero() {
		return errs.NewValueIsRequiredError("serviceDate")
	}
	l.serviceDate = serviceDate.UTC()
	return nil
}

func (l *MaintenanceLog) setPriorVehicleStatus(prior vehicle.Status) error {
	if prior != vehicle.Available && prior != vehicle.OutOfService {
		return errs.NewValueIsInvalidErrorWithCause(
			"priorVehicleStatus",
			fmt.Errorf("%s is not a status a vehicle can enter the shop from", prior),
		)
	}
	l.priorVehicleStatus = prior
	return nil
}

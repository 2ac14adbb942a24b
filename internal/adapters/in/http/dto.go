package http

import (
	"time"

	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// defaultSafetyScore is assigned to drivers registered without a score.
const defaultSafetyScore = 100

type NewTrip struct {
	ID                *openapi_types.UUID `json:"id,omitempty"`
	VehicleID         openapi_types.UUID  `json:"vehicleId" validate:"required"`
	DriverID          openapi_types.UUID  `json:"driverId" validate:"required"`
	CargoWeightKg     *float64            `json:"cargoWeightKg" validate:"required"`
	CargoDescription  string              `json:"cargoDescription,omitempty" validate:"max=500"`
	Origin            string              `json:"origin,omitempty" validate:"max=200"`
	Destination       string              `json:"destination,omitempty" validate:"max=200"`
	EstimatedFuelCost float64             `json:"estimatedFuelCost,omitempty"`
	Revenue           float64             `json:"revenue,omitempty"`
}

type DispatchTrip struct {
	StartOdometer *float64 `json:"startOdometer" validate:"required"`
}

type CompleteTrip struct {
	EndOdometer *float64 `json:"endOdometer" validate:"required"`
}

type NewVehicle struct {
	ID              *openapi_types.UUID `json:"id,omitempty"`
	Name            string              `json:"name" validate:"required,max=200"`
	LicensePlate    string              `json:"licensePlate" validate:"required,max=32"`
	MaxCapacityKg   float64             `json:"maxCapacityKg" validate:"gt=0"`
	CurrentOdometer float64             `json:"currentOdometer" validate:"gte=0"`
}

type NewDriver struct {
	ID                *openapi_types.UUID `json:"id,omitempty"`
	Name              string              `json:"name" validate:"required,max=200"`
	LicenseNumber     string              `json:"licenseNumber" validate:"required,max=64"`
	LicenseExpiryDate time.Time           `json:"licenseExpiryDate" validate:"required"`
	SafetyScore       *float64            `json:"safetyScore,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type DriverStatusChange struct {
	Status string `json:"status" validate:"required,oneof=Available OnDuty OnLeave Suspended"`
}

type NewMaintenanceLog struct {
	ID          *openapi_types.UUID `json:"id,omitempty"`
	VehicleID   openapi_types.UUID  `json:"vehicleId" validate:"required"`
	Description string              `json:"description" validate:"required,max=1000"`
	Cost        float64             `json:"cost" validate:"gte=0"`
	ServiceDate *time.Time          `json:"serviceDate,omitempty"`
}

type CompleteMaintenance struct {
	CompletedDate  *time.Time `json:"completedDate,omitempty"`
	TechnicianName string     `json:"technicianName,omitempty" validate:"max=200"`
}

type NewExpense struct {
	ID          *openapi_types.UUID `json:"id,omitempty"`
	VehicleID   openapi_types.UUID  `json:"vehicleId" validate:"required"`
	TripID      *openapi_types.UUID `json:"tripId,omitempty"`
	ExpenseType string              `json:"expenseType" validate:"required,oneof=Fuel Maintenance Toll Insurance Repair Other"`
	Amount      float64             `json:"amount" validate:"gt=0"`
	Quantity    *float64            `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Unit        string              `json:"unit,omitempty" validate:"max=32"`
	ExpenseDate *time.Time          `json:"expenseDate,omitempty"`
	Notes       string              `json:"notes,omitempty" validate:"max=1000"`
}

type Trip struct {
	ID                openapi_types.UUID `json:"id"`
	VehicleID         openapi_types.UUID `json:"vehicleId"`
	DriverID          openapi_types.UUID `json:"driverId"`
	CargoWeightKg     float64            `json:"cargoWeightKg"`
	CargoDescription  string             `json:"cargoDescription,omitempty"`
	Origin            string             `json:"origin"`
	Destination       string             `json:"destination"`
	EstimatedFuelCost float64            `json:"estimatedFuelCost"`
	Revenue           float64            `json:"revenue"`
	Status            string             `json:"status"`
	StartOdometer     *float64           `json:"startOdometer"`
	EndOdometer       *float64           `json:"endOdometer"`
	TripStartTime     *time.Time         `json:"tripStartTime"`
	TripEndTime       *time.Time         `json:"tripEndTime"`
	CreatedAt         time.Time          `json:"createdAt"`
}

type Vehicle struct {
	ID              openapi_types.UUID  `json:"id"`
	Name            string              `json:"name"`
	LicensePlate    string              `json:"licensePlate"`
	MaxCapacityKg   float64             `json:"maxCapacityKg"`
	CurrentOdometer float64             `json:"currentOdometer"`
	Status          string              `json:"status"`
	ActiveTripID    *openapi_types.UUID `json:"activeTripId"`
}

type Driver struct {
	ID                openapi_types.UUID  `json:"id"`
	Name              string              `json:"name"`
	LicenseNumber     string              `json:"licenseNumber"`
	LicenseExpiryDate time.Time           `json:"licenseExpiryDate"`
	Status            string              `json:"status"`
	TripsCompleted    int                 `json:"tripsCompleted"`
	SafetyScore       float64             `json:"safetyScore"`
	ComplaintsCount   int                 `json:"complaintsCount"`
	ActiveTripID      *openapi_types.UUID `json:"activeTripId,omitempty"`
}

type MaintenanceLog struct {
	ID             openapi_types.UUID `json:"id"`
	VehicleID      openapi_types.UUID `json:"vehicleId"`
	VehicleName    string             `json:"vehicleName,omitempty"`
	Description    string             `json:"description"`
	Cost           float64            `json:"cost"`
	ServiceDate    time.Time          `json:"serviceDate"`
	Status         string             `json:"status"`
	CompletedDate  *time.Time         `json:"completedDate"`
	TechnicianName string             `json:"technicianName,omitempty"`
}

type Expense struct {
	ID          openapi_types.UUID  `json:"id"`
	VehicleID   openapi_types.UUID  `json:"vehicleId"`
	VehicleName string              `json:"vehicleName,omitempty"`
	TripID      *openapi_types.UUID `json:"tripId"`
	ExpenseType string              `json:"expenseType"`
	Amount      float64             `json:"amount"`
	Quantity    *float64            `json:"quantity"`
	Unit        string              `json:"unit,omitempty"`
	ExpenseDate time.Time           `json:"expenseDate"`
	Notes       string              `json:"notes,omitempty"`
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

// idOrNew returns the caller-chosen identifier, or a fresh one.
func idOrNew(id *openapi_types.UUID) (kernel.UUID, error) {
	if id == nil {
		return kernel.NewUUID(), nil
	}
	return kernel.UUIDFromBytes(id[:])
}

func tripFromAggregate(t *trip.Trip) Trip {
	d := t.Details()
	return Trip{
		ID:                t.ID().Bytes(),
		VehicleID:         t.VehicleID().Bytes(),
		DriverID:          t.DriverID().Bytes(),
		CargoWeightKg:     t.CargoWeightKg(),
		CargoDescription:  d.CargoDescription,
		Origin:            d.Origin,
		Destination:       d.Destination,
		EstimatedFuelCost: d.EstimatedFuelCost,
		Revenue:           d.Revenue,
		Status:            t.Status().String(),
		StartOdometer:     t.StartOdometer(),
		EndOdometer:       t.EndOdometer(),
		TripStartTime:     t.TripStartTime(),
		TripEndTime:       t.TripEndTime(),
		CreatedAt:         t.CreatedAt(),
	}
}

func tripFromReadModel(r queries.ListTripsQueryResponse) Trip {
	return Trip{
		ID:                r.ID.Bytes(),
		VehicleID:         r.VehicleID.Bytes(),
		DriverID:          r.DriverID.Bytes(),
		CargoWeightKg:     r.CargoWeightKg,
		CargoDescription:  r.CargoDescription,
		Origin:            r.Origin,
		Destination:       r.Destination,
		EstimatedFuelCost: r.EstimatedFuelCost,
		Revenue:           r.Revenue,
		Status:            r.Status.String(),
		StartOdometer:     r.StartOdometer,
		EndOdometer:       r.EndOdometer,
		TripStartTime:     r.TripStartTime,
		TripEndTime:       r.TripEndTime,
		CreatedAt:         r.CreatedAt,
	}
}

func vehicleFromAggregate(v *vehicle.Vehicle) Vehicle {
	return Vehicle{
		ID:              v.ID().Bytes(),
		Name:            v.Name(),
		LicensePlate:    v.LicensePlate(),
		MaxCapacityKg:   v.MaxCapacityKg(),
		CurrentOdometer: v.CurrentOdometer(),
		Status:          v.Status().String(),
		ActiveTripID:    optionalID(v.ActiveTripID()),
	}
}

func vehicleFromReadModel(r queries.ListVehiclesQueryResponse) Vehicle {
	return Vehicle{
		ID:              r.ID.Bytes(),
		Name:            r.Name,
		LicensePlate:    r.LicensePlate,
		MaxCapacityKg:   r.MaxCapacityKg,
		CurrentOdometer: r.CurrentOdometer,
		Status:          r.Status.String(),
		ActiveTripID:    optionalID(r.ActiveTripID),
	}
}

func driverFromAggregate(d *driver.Driver) Driver {
	return Driver{
		ID:                d.ID().Bytes(),
		Name:              d.Name(),
		LicenseNumber:     d.LicenseNumber(),
		LicenseExpiryDate: d.LicenseExpiryDate(),
		Status:            d.Status().String(),
		TripsCompleted:    d.TripsCompleted(),
		SafetyScore:       d.SafetyScore(),
		ComplaintsCount:   d.ComplaintsCount(),
		ActiveTripID:      optionalID(d.ActiveTripID()),
	}
}

func driverFromReadModel(r queries.ListDriversQueryResponse) Driver {
	return Driver{
		ID:                r.ID.Bytes(),
		Name:              r.Name,
		LicenseNumber:     r.LicenseNumber,
		LicenseExpiryDate: r.LicenseExpiryDate,
		Status:            r.Status.String(),
		TripsCompleted:    r.TripsCompleted,
		SafetyScore:       r.SafetyScore,
		ComplaintsCount:   r.ComplaintsCount,
	}
}

func maintenanceLogFromAggregate(l *maintenance.MaintenanceLog) MaintenanceLog {
	return MaintenanceLog{
		ID:             l.ID().Bytes(),
		VehicleID:      l.VehicleID().Bytes(),
		Description:    l.Description(),
		Cost:           l.Cost(),
		ServiceDate:    l.ServiceDate(),
		Status:         l.Status().String(),
		CompletedDate:  l.CompletedDate(),
		TechnicianName: l.TechnicianName(),
	}
}

func maintenanceLogFromReadModel(r queries.ListMaintenanceLogsQueryResponse) MaintenanceLog {
	return MaintenanceLog{
		ID:             r.ID.Bytes(),
		VehicleID:      r.VehicleID.Bytes(),
		VehicleName:    r.VehicleName,
		Description:    r.Description,
		Cost:           r.Cost,
		ServiceDate:    r.ServiceDate,
		Status:         r.Status.String(),
		CompletedDate:  r.CompletedDate,
		TechnicianName: r.TechnicianName,
	}
}

func expenseFromAggregate(e *expense.Expense) Expense {
	return Expense{
		ID:          e.ID().Bytes(),
		VehicleID:   e.VehicleID().Bytes(),
		TripID:      optionalID(e.TripID()),
		ExpenseType: e.Category().String(),
		Amount:      e.Amount(),
		Quantity:    e.Quantity(),
		Unit:        e.Unit(),
		ExpenseDate: e.ExpenseDate(),
		Notes:       e.Notes(),
	}
}

func expenseFromReadModel(r queries.ListExpensesQueryResponse) Expense {
	return Expense{
		ID:          r.ID.Bytes(),
		VehicleID:   r.VehicleID.Bytes(),
		VehicleName: r.VehicleName,
		TripID:      optionalID(r.TripID),
		ExpenseType: r.Category.String(),
		Amount:      r.Amount,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		ExpenseDate: r.ExpenseDate,
		Notes:       r.Notes,
	}
}

func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

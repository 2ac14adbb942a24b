package queries

import (
	"context"

	"fleetflow/internal/core/domain/model/trip"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListTripsQueryHandler struct {
	db *gorm.DB
}

func NewListTripsQueryHandler(db *gorm.DB) ListTripsQueryHandler {
	return ListTripsQueryHandler{db: db}
}

// Handle returns the matching trips ordered by creation time, newest first.
func (h ListTripsQueryHandler) Handle(ctx context.Context, query ListTripsQuery) ([]ListTripsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status := ""
	if query.Status() != trip.Unknown {
		status = query.Status().String()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_id,
			driver_id,
			cargo_weight_kg,
			cargo_description,
			origin,
			destination,
			estimated_fuel_cost,
			revenue,
			status,
			start_odometer,
			end_odometer,
			trip_start_time,
			trip_end_time,
			created_at
		FROM trips
		WHERE (@status = '' OR status = @status)
		ORDER BY created_at DESC, id
	`, map[string]any{"status": status}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]ListTripsQueryResponse, 0)
	for rows.Next() {
		var (
			item                    ListTripsQueryResponse
			id, vehicleID, driverID uuid.UUID
			statusName              string
			cargoDescription        *string
		)

		err = rows.Scan(
			&id,
			&vehicleID,
			&driverID,
			&item.CargoWeightKg,
			&cargoDescription,
			&item.Origin,
			&item.Destination,
			&item.EstimatedFuelCost,
			&item.Revenue,
			&statusName,
			&item.StartOdometer,
			&item.EndOdometer,
			&item.TripStartTime,
			&item.TripEndTime,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if item.VehicleID, err = toKernelUUID(vehicleID); err != nil {
			return nil, err
		}
		if item.DriverID, err = toKernelUUID(driverID); err != nil {
			return nil, err
		}
		if item.Status, err = trip.ParseStatus(statusName); err != nil {
			return nil, err
		}
		if cargoDescription != nil {
			item.CargoDescription = *cargoDescription
		}
		item.CreatedAt = item.CreatedAt.UTC()

		trips = append(trips, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}

package queries

import (
	"context"

	"fleetflow/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]ListVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status := ""
	if query.Status() != vehicle.Unknown {
		status = query.Status().String()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			license_plate,
			max_capacity_kg,
			current_odometer,
			status,
			active_trip_id
		FROM vehicles
		WHERE (@status = '' OR status = @status)
		ORDER BY name, id
	`, map[string]any{"status": status}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]ListVehiclesQueryResponse, 0)
	for rows.Next() {
		var (
			item         ListVehiclesQueryResponse
			id           uuid.UUID
			activeTripID *uuid.UUID
			statusName   string
		)

		err = rows.Scan(
			&id,
			&item.Name,
			&item.LicensePlate,
			&item.MaxCapacityKg,
			&item.CurrentOdometer,
			&statusName,
			&activeTripID,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if item.Status, err = vehicle.ParseStatus(statusName); err != nil {
			return nil, err
		}
		if activeTripID != nil {
			tripID, tripErr := toKernelUUID(*activeTripID)
			if tripErr != nil {
				return nil, tripErr
			}
			item.ActiveTripID = &tripID
		}

		vehicles = append(vehicles, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

package queries

import (
	"context"

	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListMaintenanceLogsQueryHandler struct {
	db *gorm.DB
}

func NewListMaintenanceLogsQueryHandler(db *gorm.DB) ListMaintenanceLogsQueryHandler {
	return ListMaintenanceLogsQueryHandler{db: db}
}

// Handle returns the matching logs joined with their vehicle's name.
func (h ListMaintenanceLogsQueryHandler) Handle(
	ctx context.Context,
	query ListMaintenanceLogsQuery,
) ([]ListMaintenanceLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status := ""
	if query.Status() != maintenance.Unknown {
		status = query.Status().String()
	}
	var vehicleID *uuid.UUID
	if query.VehicleID() != nil {
		raw := query.VehicleID().Bytes()
		vehicleID = &raw
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.vehicle_id,
			COALESCE(v.name, ''),
			m.description,
			m.cost,
			m.service_date,
			m.status,
			m.completed_date,
			COALESCE(m.technician_name, ''),
			m.prior_vehicle_status
		FROM maintenance_logs m
		LEFT JOIN vehicles v ON v.id = m.vehicle_id
		WHERE (@status = '' OR m.status = @status)
			AND (CAST(@vehicle AS uuid) IS NULL OR m.vehicle_id = @vehicle)
		ORDER BY m.service_date DESC, m.id
	`, map[string]any{"status": status, "vehicle": vehicleID}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]ListMaintenanceLogsQueryResponse, 0)
	for rows.Next() {
		var (
			item                  ListMaintenanceLogsQueryResponse
			id, logVehicleID      uuid.UUID
			statusName, priorName string
		)

		err = rows.Scan(
			&id,
			&logVehicleID,
			&item.VehicleName,
			&item.Description,
			&item.Cost,
			&item.ServiceDate,
			&statusName,
			&item.CompletedDate,
			&item.TechnicianName,
			&priorName,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if item.VehicleID, err = toKernelUUID(logVehicleID); err != nil {
			return nil, err
		}
		if item.Status, err = maintenance.ParseStatus(statusName); err != nil {
			return nil, err
		}
		if item.PriorVehicleStatus, err = vehicle.ParseStatus(priorName); err != nil {
			return nil, err
		}
		item.ServiceDate = item.ServiceDate.UTC()

		logs = append(logs, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

package queries

import (
	"context"

	"fleetflow/internal/core/domain/model/driver"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDriversQueryHandler struct {
	db *gorm.DB
}

func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]ListDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status := ""
	if query.Status() != driver.Unknown {
		status = query.Status().String()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			license_number,
			license_expiry_date,
			status,
			trips_completed,
			safety_score,
			complaints_count
		FROM drivers
		WHERE (@status = '' OR status = @status)
		ORDER BY name, id
	`, map[string]any{"status": status}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]ListDriversQueryResponse, 0)
	for rows.Next() {
		var (
			item       ListDriversQueryResponse
			id         uuid.UUID
			statusName string
		)

		err = rows.Scan(
			&id,
			&item.Name,
			&item.LicenseNumber,
			&item.LicenseExpiryDate,
			&statusName,
			&item.TripsCompleted,
			&item.SafetyScore,
			&item.ComplaintsCount,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if item.Status, err = driver.ParseStatus(statusName); err != nil {
			return nil, err
		}
		item.LicenseExpiryDate = item.LicenseExpiryDate.UTC()

		drivers = append(drivers, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

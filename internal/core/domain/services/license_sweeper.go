package services

import (
	"time"

	"fleetflow/internal/core/domain/model/driver"
)

// LicenseSweeper suspends drivers whose license expired. It never
// reinstates a driver, so running it repeatedly is idempotent.
type LicenseSweeper struct{}

// NewLicenseSweeper creates a LicenseSweeper.
func NewLicenseSweeper() LicenseSweeper {
	return LicenseSweeper{}
}

// Sweep suspends d if its license expired before now and it is not already
// Suspended. It reports whether d changed.
func (LicenseSweeper) Sweep(d *driver.Driver, now time.Time) bool {
	if !d.LicenseExpired(now) {
		return false
	}
	return d.Suspend()
}

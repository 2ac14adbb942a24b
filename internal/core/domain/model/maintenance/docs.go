// Package maintenance provides the MaintenanceLog aggregate. A log is opened
// Pending against a vehicle and closed once, recording the vehicle status it
// interrupted so completion can restore it.
package maintenance

// Package driver provides the Driver aggregate: license validity, duty
// status and the trip counters used for safety reporting.
package driver

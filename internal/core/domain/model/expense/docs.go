// Package expense provides the Expense aggregate: a cost booked against a
// vehicle and optionally the trip it was incurred on. Expenses are recorded
// once and never change.
package expense

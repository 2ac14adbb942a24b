// Package trip provides the Trip aggregate and its lifecycle.
//
// A trip is created in Draft, dispatched once, and ends either Completed or
// Cancelled. Both end states are terminal. The Trip aggregate only tracks its
// own fields; the linked vehicle and driver transitions are coordinated by
// the domain services.
package trip

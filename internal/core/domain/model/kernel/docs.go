// Package kernel provides the shared domain primitives of the fleet model.
//
// The package includes:
//   - UUID: a value object identifying vehicles, drivers, trips and maintenance logs
//   - Event: the record published after a transition has been committed
//
// Primitives are immutable and safe for concurrent use.
package kernel

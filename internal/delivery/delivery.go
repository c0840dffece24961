// Package delivery defines the contract every transport entry point
// (HTTP today, more later) exposes to the application runner.
package delivery

import "context"

// Delivery is a long-running transport server managed by the application
// lifecycle. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}

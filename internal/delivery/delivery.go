// Package delivery defines the contract between the application runner and
// the transport front ends it serves.
package delivery

import "context"

// Delivery is a serving surface started by the application runner. Serve
// blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}

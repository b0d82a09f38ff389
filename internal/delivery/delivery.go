// Package delivery defines the contract every transport implementation
// exposes to the application bootstrap.
package delivery

import "context"

// Delivery is a serving surface started by the application bootstrap.
type Delivery interface {
	Serve(ctx context.Context) error
}

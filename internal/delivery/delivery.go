// Package delivery defines the contract every transport-facing server
// implements.
package delivery

import "context"

// Delivery is a long-running server collected into the fx "deliveries"
// group and started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}

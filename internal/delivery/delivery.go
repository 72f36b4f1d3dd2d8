// Package delivery defines the contract every transport implementation
// satisfies, keeping the composition root independent of the protocol.
package delivery

import "context"

// Delivery is a running transport surface, such as the HTTP server.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}

// Package delivery holds the inbound surfaces of the navigator: the HTTP API
// and the tick loop.
package delivery

import "context"

// Delivery is a long-running inbound surface started by the application
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery defines the servers started by the application.
package delivery

import "context"

// Delivery is a long-running server started after the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}

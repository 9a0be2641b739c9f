// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is implemented by each serving surface (HTTP, workers). The fx
// application collects them and runs Serve until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (DB pings, HTTP drain).
const DefaultTimeout = 30 * time.Second

// Package lifecycle holds process-wide start and stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and connection pools.
const DefaultTimeout = 10 * time.Second

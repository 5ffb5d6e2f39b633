// Package lifecycle holds the shared bounds for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook.
const DefaultTimeout = 10 * time.Second

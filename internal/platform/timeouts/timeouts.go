// Package timeouts defines shared timeout constants used across commands.
package timeouts

import "time"

// TelemetryShutdown caps how long a command waits for spans to flush on exit.
const TelemetryShutdown = 5 * time.Second

// Package timeouts centralizes context deadlines for handler I/O.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and writes
//   - Medium: list queries and multi-step writes
//   - Relay: the outbound call to the form endpoint
package timeouts

import (
	"sync"
	"time"
)

// Defaults, used unless Configure is called at startup.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultRelay  = 15 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	relay  = DefaultRelay
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for simple single-document operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and moderate writes.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Relay returns the timeout for the outbound form-endpoint call.
func Relay() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return relay
}

// Config holds timeout overrides; zero values keep the current setting.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Relay  time.Duration
}

// Configure applies overrides. Call during startup, before handlers run.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
	if cfg.Relay > 0 {
		relay = cfg.Relay
	}
}

// Reset restores defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	relay = DefaultRelay
}

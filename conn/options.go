package conn

import (
	"log"
	"os"
	"time"
)

// Options configures a StateMachine. The zero value is usable: compression
// stays enabled (servers announce their own threshold), logging goes to the
// package default logger with debug tracing off, and the session server is
// Mojang's production one.
type Options struct {
	// DisableCompression makes the state machine ignore any Set Compression
	// packet and keep every frame uncompressed. Mostly useful against local
	// test servers and mock-server unit tests.
	DisableCompression bool

	// Debug turns on verbose per-packet tracing via Logger.
	Debug bool

	// Logger receives log output; nil falls back to the package default
	// (log.New(os.Stdout, "[conn] ", log.LstdFlags)), matching the teacher's
	// BaseTCP nil-safe logger convention.
	Logger *log.Logger

	// SessionServerURL overrides the Mojang session server base URL, for
	// tests that stand up a fake one.
	SessionServerURL string

	// TickRate is not read anywhere in this module: neither the state
	// machine nor tick.Scheduler uses it, and the scheduler always runs at
	// its fixed 50ms interval.
	TickRate time.Duration
}

func defaultLogger() *log.Logger {
	return log.New(os.Stdout, "[conn] ", log.LstdFlags)
}

func (o Options) logf(format string, args ...any) {
	logger := o.Logger
	if logger == nil {
		logger = defaultLogger()
	}
	logger.Printf(format, args...)
}

func (o Options) debugf(format string, args ...any) {
	if o.Debug {
		o.logf(format, args...)
	}
}

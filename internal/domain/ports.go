package domain

import (
	"context"
	"iter"
	"time"
)

// ScanItem is the tagged per-entry result of a pad scan. Exactly one of
// Entry or Skip is set; malformed entries surface as skip notes and never
// abort a scan.
type ScanItem struct {
	Entry *Entry
	Skip  *SkipNote
}

// EntryLog is the durable append-only scratchpad store.
type EntryLog interface {
	// Path returns the pad file location.
	Path() string
	// Exists reports whether the pad file exists.
	Exists() bool
	// Init creates the pad with its preamble if missing.
	// Returns true when the file was created by this call.
	Init() (bool, error)
	// Append renders and appends one entry as a single write.
	// Existing content is never read or modified.
	Append(e *Entry) error
	// Scan returns a lazy, restartable sequence over all entries in file
	// order. It fails with ErrPadNotInitialized when the pad does not exist.
	Scan() (iter.Seq[ScanItem], error)
}

// PadWatcher reports modification events for the pad file.
type PadWatcher interface {
	// Watch starts watching and returns a channel that receives a signal
	// after each modification. The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// ConfigLoader loads the merged agentpad configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}

// Logger is the logging port used across use cases.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

package usecase

import (
	"context"
	"fmt"

	"github.com/agentpad/agentpad/internal/domain"
)

// WatchEntriesInput contains the parameters for following the pad.
type WatchEntriesInput struct {
	// Emit is called once for each entry appended after the watch started,
	// in file order.
	Emit func(*domain.Entry)
}

// WatchEntries is the use case for following the pad and reporting new
// entries as other agents append them.
type WatchEntries struct {
	pad     domain.EntryLog
	watcher domain.PadWatcher
	logger  domain.Logger
}

// NewWatchEntries creates a new WatchEntries use case.
func NewWatchEntries(pad domain.EntryLog, watcher domain.PadWatcher, logger domain.Logger) *WatchEntries {
	return &WatchEntries{pad: pad, watcher: watcher, logger: logger}
}

// Execute blocks until ctx is cancelled, emitting entries appended after
// the call started. Each change signal triggers a fresh snapshot scan;
// entries beyond the previously seen count are emitted. Entries present
// before the watch started are not replayed.
func (uc *WatchEntries) Execute(ctx context.Context, in WatchEntriesInput) error {
	entries, _, err := collectEntries(uc.pad, uc.logger)
	if err != nil {
		return err
	}
	seen := len(entries)

	events, err := uc.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch pad: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			entries, _, err := collectEntries(uc.pad, uc.logger)
			if err != nil {
				return err
			}
			for _, e := range entries[min(seen, len(entries)):] {
				if in.Emit != nil {
					in.Emit(e)
				}
			}
			if len(entries) > seen {
				seen = len(entries)
			}
		}
	}
}

// Package watch provides fsnotify-based change notification for the pad file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/agentpad/agentpad/internal/domain"
)

// debounceDelay coalesces the burst of events a single append produces.
const debounceDelay = 100 * time.Millisecond

// Ensure Watcher implements domain.PadWatcher.
var _ domain.PadWatcher = (*Watcher)(nil)

// Watcher watches the pad file for appends. It watches the pad's directory
// rather than the file itself so appends are still seen when the file is
// created after the watch starts.
type Watcher struct {
	padPath string
}

// New creates a Watcher for the given pad file.
func New(padPath string) *Watcher {
	return &Watcher{padPath: filepath.Clean(padPath)}
}

// Watch starts watching and returns a channel that receives a signal after
// each debounced modification of the pad file. The channel is closed when
// ctx is cancelled. The channel has capacity one and signals are collapsed,
// readers are expected to rescan the pad on each signal.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.padPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch pad directory: %w", err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer func() { _ = fsw.Close() }()

		var timer *time.Timer
		var timerC <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != w.padPath {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounceDelay)
					timerC = timer.C
				} else {
					timer.Reset(debounceDelay)
				}
			case <-timerC:
				timer = nil
				timerC = nil
				select {
				case out <- struct{}{}:
				default:
				}
			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return out, nil
}

package usecase

import (
	"context"

	"github.com/agentpad/agentpad/internal/domain"
)

// TailEntriesInput contains the parameters for tailing the pad.
type TailEntriesInput struct {
	Count int // Number of entries to return (must be positive)
}

// TailEntriesOutput contains the tail of the pad.
type TailEntriesOutput struct {
	Entries []*domain.Entry // Last entries in file order, most recent last
	Skipped int             // Malformed entries skipped during the scan
}

// TailEntries is the use case for reading the most recent entries.
type TailEntries struct {
	pad    domain.EntryLog
	logger domain.Logger
}

// NewTailEntries creates a new TailEntries use case.
func NewTailEntries(pad domain.EntryLog, logger domain.Logger) *TailEntries {
	return &TailEntries{pad: pad, logger: logger}
}

// Execute returns the last Count entries in file order. Asking for more
// entries than the pad holds returns everything; an existing-but-empty pad
// yields an empty slice, only a missing pad is an error.
func (uc *TailEntries) Execute(_ context.Context, in TailEntriesInput) (*TailEntriesOutput, error) {
	if in.Count < 1 {
		return nil, domain.ErrInvalidTailCount
	}

	entries, skipped, err := collectEntries(uc.pad, uc.logger)
	if err != nil {
		return nil, err
	}
	if len(entries) > in.Count {
		entries = entries[len(entries)-in.Count:]
	}
	return &TailEntriesOutput{Entries: entries, Skipped: skipped}, nil
}

package usecase

import (
	"context"

	"github.com/agentpad/agentpad/internal/domain"
)

// FilterEntriesInput contains the parameters for filtering entries by type.
type FilterEntriesInput struct {
	Type string // Entry type, case-insensitive (required)
}

// FilterEntriesOutput contains the matching entries.
type FilterEntriesOutput struct {
	Entries []*domain.Entry // Matching entries in file order
	Skipped int             // Malformed entries skipped during the scan
}

// FilterEntries is the use case for listing all entries of one type.
type FilterEntries struct {
	pad    domain.EntryLog
	logger domain.Logger
}

// NewFilterEntries creates a new FilterEntries use case.
func NewFilterEntries(pad domain.EntryLog, logger domain.Logger) *FilterEntries {
	return &FilterEntries{pad: pad, logger: logger}
}

// Execute returns all entries of the given type in file order.
func (uc *FilterEntries) Execute(_ context.Context, in FilterEntriesInput) (*FilterEntriesOutput, error) {
	typ, err := domain.ParseEntryType(in.Type)
	if err != nil {
		return nil, err
	}

	entries, skipped, err := collectEntries(uc.pad, uc.logger)
	if err != nil {
		return nil, err
	}

	var matched []*domain.Entry
	for _, e := range entries {
		if e.Type == typ {
			matched = append(matched, e)
		}
	}
	return &FilterEntriesOutput{Entries: matched, Skipped: skipped}, nil
}

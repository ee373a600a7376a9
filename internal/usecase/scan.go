package usecase

import (
	"fmt"

	"github.com/agentpad/agentpad/internal/domain"
)

// collectEntries drains one pass of a pad scan, logging and counting
// malformed entries instead of failing. The pad is a shared multi-writer
// resource; one broken header must never make it unreadable.
func collectEntries(pad domain.EntryLog, logger domain.Logger) ([]*domain.Entry, int, error) {
	seq, err := pad.Scan()
	if err != nil {
		return nil, 0, err
	}

	var entries []*domain.Entry
	skipped := 0
	for item := range seq {
		if item.Skip != nil {
			skipped++
			if logger != nil {
				logger.Warn("scan", fmt.Sprintf("skipped malformed entry at %s:%d: %s",
					pad.Path(), item.Skip.Line, item.Skip.Reason))
			}
			continue
		}
		entries = append(entries, item.Entry)
	}
	return entries, skipped, nil
}

// openQuestionsOf computes the still-open questions from one snapshot of
// entries: every QUESTION id minus the ids referenced by any ANSWER closes,
// in order of first appearance.
func openQuestionsOf(entries []*domain.Entry) []*domain.Entry {
	var order []*domain.Entry
	byID := make(map[string]bool)
	closed := make(map[string]bool)

	for _, e := range entries {
		switch e.Type {
		case domain.EntryQuestion:
			if !byID[e.ID] {
				byID[e.ID] = true
				order = append(order, e)
			}
		case domain.EntryAnswer:
			closed[e.Closes] = true
		}
	}

	var open []*domain.Entry
	for _, q := range order {
		if !closed[q.ID] {
			open = append(open, q)
		}
	}
	return open
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentpad/agentpad/internal/domain"
)

// AddEntryInput contains the parameters for appending one entry.
type AddEntryInput struct {
	Type   string // Entry type, case-insensitive (required)
	Agent  string // Producing agent (required)
	Role   string // Functional role (optional)
	Body   string // Free-text body (required)
	ID     string // Explicit question id (optional; QUESTION only)
	Closes string // Question id being answered (required for ANSWER)
}

// AddEntryOutput contains the appended entry, including its generated
// timestamp and, for questions, its generated id.
type AddEntryOutput struct {
	Entry *domain.Entry
}

// AddEntry is the use case for appending one entry to the pad.
type AddEntry struct {
	pad    domain.EntryLog
	clock  domain.Clock
	logger domain.Logger
}

// NewAddEntry creates a new AddEntry use case.
func NewAddEntry(pad domain.EntryLog, clock domain.Clock, logger domain.Logger) *AddEntry {
	return &AddEntry{pad: pad, clock: clock, logger: logger}
}

// Execute validates and appends one entry. Questions without an explicit id
// get a freshly generated one; whether an answer's closes id matches an
// existing question is deliberately not checked here (soft reference).
func (uc *AddEntry) Execute(_ context.Context, in AddEntryInput) (*AddEntryOutput, error) {
	typ, err := domain.ParseEntryType(in.Type)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	entry := &domain.Entry{
		Timestamp: now,
		Type:      typ,
		Agent:     strings.TrimSpace(in.Agent),
		Role:      strings.TrimSpace(in.Role),
		ID:        strings.TrimSpace(in.ID),
		Closes:    strings.TrimSpace(in.Closes),
		Body:      in.Body,
	}
	if entry.Agent == "" {
		entry.Agent = domain.UnknownAgent
	}
	if typ == domain.EntryQuestion && entry.ID == "" {
		entry.ID = domain.NewQuestionID(now)
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.pad.Append(entry); err != nil {
		return nil, fmt.Errorf("append entry: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("pad", fmt.Sprintf("appended %s by %s", entry.Type, entry.Agent))
	}

	return &AddEntryOutput{Entry: entry}, nil
}

// Package usecase contains application use cases.
package usecase

import (
	"context"

	"github.com/agentpad/agentpad/internal/domain"
)

// InitPadInput contains the parameters for initializing the pad.
type InitPadInput struct{}

// InitPadOutput contains the result of initializing the pad.
type InitPadOutput struct {
	Path    string // Pad file location
	Created bool   // Whether this call created the file
}

// InitPad is the use case for creating the scratchpad file.
type InitPad struct {
	pad    domain.EntryLog
	logger domain.Logger
}

// NewInitPad creates a new InitPad use case.
func NewInitPad(pad domain.EntryLog, logger domain.Logger) *InitPad {
	return &InitPad{pad: pad, logger: logger}
}

// Execute ensures the pad exists with its preamble. Calling it on an
// existing pad is a no-op.
func (uc *InitPad) Execute(_ context.Context, _ InitPadInput) (*InitPadOutput, error) {
	created, err := uc.pad.Init()
	if err != nil {
		return nil, err
	}
	if created && uc.logger != nil {
		uc.logger.Info("pad", "initialized "+uc.pad.Path())
	}
	return &InitPadOutput{Path: uc.pad.Path(), Created: created}, nil
}

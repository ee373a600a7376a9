package usecase

import (
	"context"

	"github.com/agentpad/agentpad/internal/domain"
)

// OpenQuestionsInput contains the parameters for listing open questions.
type OpenQuestionsInput struct{}

// OpenQuestionsOutput contains the open questions.
type OpenQuestionsOutput struct {
	Questions []*domain.Entry // Still-open QUESTION entries, first-appearance order
	Skipped   int             // Malformed entries skipped during the scan
}

// OpenQuestions is the use case for listing questions not yet closed by an
// answer.
type OpenQuestions struct {
	pad    domain.EntryLog
	logger domain.Logger
}

// NewOpenQuestions creates a new OpenQuestions use case.
func NewOpenQuestions(pad domain.EntryLog, logger domain.Logger) *OpenQuestions {
	return &OpenQuestions{pad: pad, logger: logger}
}

// Execute scans the pad once and returns every QUESTION whose id is not
// referenced by any ANSWER closes anywhere in the log. The result is a
// snapshot; appends racing the scan may not be reflected. An answer whose
// closes id matches no question resolves nothing.
func (uc *OpenQuestions) Execute(_ context.Context, _ OpenQuestionsInput) (*OpenQuestionsOutput, error) {
	entries, skipped, err := collectEntries(uc.pad, uc.logger)
	if err != nil {
		return nil, err
	}
	return &OpenQuestionsOutput{Questions: openQuestionsOf(entries), Skipped: skipped}, nil
}

package domain

import "errors"

// Domain errors.
var (
	ErrPadNotInitialized = errors.New("scratchpad not initialized (run 'agentpad init' first)")
	ErrPadPathConflict   = errors.New("scratchpad path is occupied by an incompatible resource")
	ErrUnknownEntryType  = errors.New("unknown entry type")
	ErrEmptyAgent        = errors.New("agent name cannot be empty")
	ErrEmptyBody         = errors.New("entry body cannot be empty")
	ErrMissingQuestionID = errors.New("question entries require an id")
	ErrMissingCloses     = errors.New("answer entries must reference a question id")
	ErrInvalidTailCount  = errors.New("tail count must be positive")
)

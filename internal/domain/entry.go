// Package domain contains the core entities and ports for agentpad.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// EntryType classifies a scratchpad entry.
type EntryType string

// Entry types recognized in the pad.
const (
	EntryTask     EntryType = "TASK"
	EntryPointer  EntryType = "POINTER"
	EntryNote     EntryType = "NOTE"
	EntryQuestion EntryType = "QUESTION"
	EntryAnswer   EntryType = "ANSWER"
)

// EntryTypes lists all valid entry types in display order.
var EntryTypes = []EntryType{EntryTask, EntryPointer, EntryNote, EntryQuestion, EntryAnswer}

// IsValid reports whether t is a recognized entry type.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTask, EntryPointer, EntryNote, EntryQuestion, EntryAnswer:
		return true
	}
	return false
}

// ParseEntryType normalizes and validates a user-supplied type string.
func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntryType, s)
	}
	return t, nil
}

// TimestampLayout is the header timestamp format. It is local-offset-aware
// and stable in markdown diffs.
const TimestampLayout = "2006-01-02 15:04:05 -0700"

// Entry is one immutable scratchpad record. Once appended it is never
// edited or deleted.
type Entry struct {
	Timestamp time.Time
	Type      EntryType
	Agent     string
	Role      string // optional functional role of the agent
	ID        string // set for QUESTION entries only, unique per pad
	Closes    string // set for ANSWER entries only, references a question id
	Body      string // free text, opaque to the pad
}

// Header renders the entry header line.
// Format: ## <timestamp> | <TYPE> | agent=<agent>[ | role=<role>][ | id=<id>][ | closes=<id>]
func (e *Entry) Header() string {
	parts := []string{e.Timestamp.Format(TimestampLayout), string(e.Type), "agent=" + e.Agent}
	if e.Role != "" {
		parts = append(parts, "role="+e.Role)
	}
	if e.ID != "" {
		parts = append(parts, "id="+e.ID)
	}
	if e.Closes != "" {
		parts = append(parts, "closes="+e.Closes)
	}
	return "## " + strings.Join(parts, " | ")
}

// Render returns the full markdown block for the entry. The trailing blank
// line keeps appends from different agents cleanly separated.
func (e *Entry) Render() string {
	return e.Header() + "\n" + strings.TrimSpace(e.Body) + "\n\n"
}

// Validate checks that the entry can be represented in the pad.
// Note: ANSWER closes is a soft reference; whether it matches an existing
// question id is deliberately not checked at write time.
func (e *Entry) Validate() error {
	if !e.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownEntryType, e.Type)
	}
	if e.Agent == "" {
		return ErrEmptyAgent
	}
	if strings.TrimSpace(e.Body) == "" {
		return ErrEmptyBody
	}
	if e.Type == EntryQuestion && e.ID == "" {
		return ErrMissingQuestionID
	}
	if e.Type == EntryAnswer && e.Closes == "" {
		return ErrMissingCloses
	}
	return nil
}

// SkipNote records a malformed entry group skipped during a scan.
type SkipNote struct {
	Line   int    // 1-based line number of the offending header
	Header string // raw header line
	Reason string
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EntryType
		wantErr bool
	}{
		{name: "upper", input: "TASK", want: EntryTask},
		{name: "lower", input: "note", want: EntryNote},
		{name: "mixed with spaces", input: "  Question ", want: EntryQuestion},
		{name: "pointer", input: "POINTER", want: EntryPointer},
		{name: "answer", input: "answer", want: EntryAnswer},
		{name: "unknown", input: "COMMENT", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntryType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownEntryType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntry_Header(t *testing.T) {
	ts := time.Date(2025, 8, 27, 10, 30, 0, 0, time.FixedZone("", 2*60*60))

	t.Run("minimal", func(t *testing.T) {
		e := &Entry{Timestamp: ts, Type: EntryNote, Agent: "a1"}
		assert.Equal(t, "## 2025-08-27 10:30:00 +0200 | NOTE | agent=a1", e.Header())
	})

	t.Run("all fields", func(t *testing.T) {
		e := &Entry{
			Timestamp: ts,
			Type:      EntryAnswer,
			Agent:     "a2",
			Role:      "reviewer",
			Closes:    "Q-20250827-103000-abcd1234",
		}
		assert.Equal(t,
			"## 2025-08-27 10:30:00 +0200 | ANSWER | agent=a2 | role=reviewer | closes=Q-20250827-103000-abcd1234",
			e.Header())
	})

	t.Run("question id", func(t *testing.T) {
		e := &Entry{Timestamp: ts, Type: EntryQuestion, Agent: "a1", ID: "Q-1"}
		assert.Equal(t, "## 2025-08-27 10:30:00 +0200 | QUESTION | agent=a1 | id=Q-1", e.Header())
	})
}

func TestEntry_Render(t *testing.T) {
	ts := time.Date(2025, 8, 27, 10, 30, 0, 0, time.UTC)
	e := &Entry{Timestamp: ts, Type: EntryTask, Agent: "a1", Body: "refresh rankings\nthen report\n"}

	got := e.Render()
	assert.Equal(t, "## 2025-08-27 10:30:00 +0000 | TASK | agent=a1\nrefresh rankings\nthen report\n\n", got)
}

func TestEntry_Validate(t *testing.T) {
	ts := time.Now()

	tests := []struct {
		name    string
		entry   Entry
		wantErr error
	}{
		{
			name:  "valid note",
			entry: Entry{Timestamp: ts, Type: EntryNote, Agent: "a1", Body: "hello"},
		},
		{
			name:    "unknown type",
			entry:   Entry{Timestamp: ts, Type: "COMMENT", Agent: "a1", Body: "hello"},
			wantErr: ErrUnknownEntryType,
		},
		{
			name:    "empty agent",
			entry:   Entry{Timestamp: ts, Type: EntryNote, Body: "hello"},
			wantErr: ErrEmptyAgent,
		},
		{
			name:    "blank body",
			entry:   Entry{Timestamp: ts, Type: EntryNote, Agent: "a1", Body: "  \n "},
			wantErr: ErrEmptyBody,
		},
		{
			name:    "question without id",
			entry:   Entry{Timestamp: ts, Type: EntryQuestion, Agent: "a1", Body: "why?"},
			wantErr: ErrMissingQuestionID,
		},
		{
			name:    "answer without closes",
			entry:   Entry{Timestamp: ts, Type: EntryAnswer, Agent: "a1", Body: "because"},
			wantErr: ErrMissingCloses,
		},
		{
			name:  "answer with phantom closes is still valid",
			entry: Entry{Timestamp: ts, Type: EntryAnswer, Agent: "a1", Closes: "Q-never-seen", Body: "because"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

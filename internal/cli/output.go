package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/agentpad/agentpad/internal/domain"
)

// Output formats for reading commands.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// entryDoc is the serializable view of an entry for --output json/yaml.
type entryDoc struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Type      string `json:"type" yaml:"type"`
	Agent     string `json:"agent" yaml:"agent"`
	Role      string `json:"role,omitempty" yaml:"role,omitempty"`
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Closes    string `json:"closes,omitempty" yaml:"closes,omitempty"`
	Body      string `json:"body" yaml:"body"`
}

func newEntryDoc(e *domain.Entry) entryDoc {
	return entryDoc{
		Timestamp: e.Timestamp.Format(domain.TimestampLayout),
		Type:      string(e.Type),
		Agent:     e.Agent,
		Role:      e.Role,
		ID:        e.ID,
		Closes:    e.Closes,
		Body:      e.Body,
	}
}

// printEntries writes entries to w in the requested format. Text output is
// the pad's own on-disk rendering.
func printEntries(w io.Writer, format string, entries []*domain.Entry) error {
	switch format {
	case outputText:
		for _, e := range entries {
			fmt.Fprint(w, e.Render())
		}
		return nil
	case outputJSON:
		docs := make([]entryDoc, 0, len(entries))
		for _, e := range entries {
			docs = append(docs, newEntryDoc(e))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case outputYAML:
		docs := make([]entryDoc, 0, len(entries))
		for _, e := range entries {
			docs = append(docs, newEntryDoc(e))
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// Package padstore provides the file-backed append-only scratchpad store.
// One pad is a single human-readable markdown file; entries are recognized
// by their "## " header line and run until the next header or end of file.
package padstore

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentpad/agentpad/internal/domain"
)

// headerPrefix marks an entry header line.
const headerPrefix = "## "

// preamble is written once by Init. It doubles as the coordination protocol
// description for agents that open the pad directly.
const preamble = `# Agent Scratchpad

Shared, append-only scratchpad for coordinating multiple agents working in this repo.

Protocol:
- Read before starting non-trivial work.
- Append entries (TASK/POINTER/NOTE/QUESTION/ANSWER) with concrete file paths and commands.
- Prefer leaving a QUESTION over blocking.

---

`

// Store implements domain.EntryLog on a single markdown file.
type Store struct {
	path string
}

// Ensure Store implements EntryLog.
var _ domain.EntryLog = (*Store)(nil)

// New creates a Store for the given pad file.
func New(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the pad file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the pad file exists.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Init creates the pad file with its preamble if missing. A second Init on
// an existing pad is a no-op; it fails only when the path is occupied by an
// incompatible resource such as a directory.
func (s *Store) Init() (bool, error) {
	info, err := os.Stat(s.path)
	if err == nil {
		if info.IsDir() {
			return false, fmt.Errorf("%w: %s is a directory", domain.ErrPadPathConflict, s.path)
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat pad file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return false, fmt.Errorf("create pad directory: %w", err)
	}

	// O_EXCL keeps two concurrent inits from both writing the preamble.
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create pad file: %w", err)
	}
	if _, err := f.WriteString(preamble); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("write pad preamble: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close pad file: %w", err)
	}
	return true, nil
}

// Append renders the entry and appends it in a single O_APPEND write.
// There is no read-modify-write of existing content and no locking; at this
// tool's scale the OS append semantics keep interleaved writers whole.
// The pad is created on demand so agents can add before anyone ran init.
func (s *Store) Append(e *domain.Entry) error {
	if _, err := s.Init(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open pad file: %w", err)
	}
	if _, err := f.WriteString(e.Render()); err != nil {
		_ = f.Close()
		return fmt.Errorf("append entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close pad file: %w", err)
	}
	return nil
}

// Scan returns a lazy sequence over all entries in file order. The file is
// re-read on every iteration, so the sequence is restartable; appends made
// between iterations show up on the next pass. Malformed headers yield skip
// notes instead of aborting, the pad is a shared multi-writer resource that
// cannot be rolled back.
func (s *Store) Scan() (iter.Seq[domain.ScanItem], error) {
	if !s.Exists() {
		return nil, domain.ErrPadNotInitialized
	}
	return func(yield func(domain.ScanItem) bool) {
		content, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		lines := strings.Split(string(content), "\n")

		var cur *domain.Entry
		var body []string
		flush := func() bool {
			if cur == nil {
				return true
			}
			cur.Body = strings.TrimSpace(strings.Join(body, "\n"))
			e := cur
			cur, body = nil, nil
			return yield(domain.ScanItem{Entry: e})
		}

		for i, line := range lines {
			if !strings.HasPrefix(line, headerPrefix) {
				if cur != nil {
					body = append(body, line)
				}
				continue
			}
			if !flush() {
				return
			}
			entry, err := parseHeader(line)
			if err != nil {
				skip := &domain.SkipNote{Line: i + 1, Header: line, Reason: err.Error()}
				if !yield(domain.ScanItem{Skip: skip}) {
					return
				}
				continue
			}
			cur = entry
		}
		flush()
	}, nil
}

// parseHeader parses one entry header line:
//
//	## <timestamp> | <TYPE> | agent=<agent>[ | role=<role>][ | id=<id>][ | closes=<id>]
func parseHeader(line string) (*domain.Entry, error) {
	parts := strings.Split(strings.TrimPrefix(line, headerPrefix), "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		return nil, errors.New("header needs timestamp, type and agent")
	}

	ts, err := time.Parse(domain.TimestampLayout, parts[0])
	if err != nil {
		return nil, fmt.Errorf("bad timestamp %q", parts[0])
	}
	typ := domain.EntryType(parts[1])
	if !typ.IsValid() {
		return nil, fmt.Errorf("unknown type %q", parts[1])
	}

	e := &domain.Entry{Timestamp: ts, Type: typ}
	for _, part := range parts[2:] {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("bad metadata field %q", part)
		}
		switch key {
		case "agent":
			e.Agent = value
		case "role":
			e.Role = value
		case "id":
			e.ID = value
		case "closes":
			e.Closes = value
		default:
			return nil, fmt.Errorf("unknown metadata key %q", key)
		}
	}

	if e.Agent == "" {
		return nil, errors.New("missing agent")
	}
	if e.Type == domain.EntryQuestion && e.ID == "" {
		return nil, errors.New("question without id")
	}
	if e.Type == domain.EntryAnswer && e.Closes == "" {
		return nil, errors.New("answer without closes")
	}
	return e, nil
}

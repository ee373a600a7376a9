package domain

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPadFile is the pad location relative to the repository root.
const DefaultPadFile = "scratchpad/AGENT_SCRATCHPAD.md"

// ConfigFileName is the repository-level config file at the repo root.
const ConfigFileName = ".agentpad.toml"

// NewQuestionID returns a fresh question id.
// Format: Q-<yyyymmdd-hhmmss>-<8 random hex chars>. The timestamp keeps ids
// human-scannable; the random suffix avoids collisions across concurrent
// agents that share no coordinator.
func NewQuestionID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "Q-" + now.Format("20060102-150405") + "-" + suffix
}

// PadPath resolves the configured pad file against the repository root.
func PadPath(root, padFile string) string {
	if padFile == "" {
		padFile = DefaultPadFile
	}
	if filepath.IsAbs(padFile) {
		return padFile
	}
	return filepath.Join(root, padFile)
}

// LogPath returns the agentpad log file location for a given pad file.
// Logs live next to the pad so one coordination scope has one place to look.
func LogPath(padPath string) string {
	return filepath.Join(filepath.Dir(padPath), "logs", "agentpad.log")
}

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "agentpad")
}

package domain

// Config is the merged agentpad configuration.
// Values come from defaults, the global config and the repository config,
// later sources taking precedence.
type Config struct {
	Pad   PadConfig
	Agent AgentConfig
	Log   LogConfig
}

// PadConfig holds pad location settings from the [pad] section.
type PadConfig struct {
	File string // Pad file path, relative to the repository root
}

// AgentConfig holds default agent identity from the [agent] section.
type AgentConfig struct {
	Name string
	Role string
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Pad: PadConfig{File: DefaultPadFile},
		Log: LogConfig{Level: "info"},
	}
}

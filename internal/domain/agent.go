package domain

import "os"

// UnknownAgent is the fallback agent name when nothing else resolves.
const UnknownAgent = "unknown"

// ResolveAgent returns the agent name for a new entry.
// Precedence: explicit flag, AGENT_NAME env, config, USER env, "unknown".
func ResolveAgent(explicit string, cfg *Config) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv("AGENT_NAME"); v != "" {
		return v
	}
	if cfg != nil && cfg.Agent.Name != "" {
		return cfg.Agent.Name
	}
	if v := os.Getenv("USER"); v != "" {
		return v
	}
	return UnknownAgent
}

// ResolveRole returns the agent role for a new entry, or empty when no role
// is configured anywhere. Role is an optional header field.
func ResolveRole(explicit string, cfg *Config) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv("AGENT_ROLE"); v != "" {
		return v
	}
	if cfg != nil && cfg.Agent.Role != "" {
		return cfg.Agent.Role
	}
	return ""
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAgent(t *testing.T) {
	cfg := &Config{Agent: AgentConfig{Name: "cfg-agent", Role: "cfg-role"}}

	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv("AGENT_NAME", "env-agent")
		assert.Equal(t, "cli-agent", ResolveAgent("cli-agent", cfg))
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv("AGENT_NAME", "env-agent")
		assert.Equal(t, "env-agent", ResolveAgent("", cfg))
	})

	t.Run("config beats USER", func(t *testing.T) {
		t.Setenv("AGENT_NAME", "")
		t.Setenv("USER", "shell-user")
		assert.Equal(t, "cfg-agent", ResolveAgent("", cfg))
	})

	t.Run("USER fallback", func(t *testing.T) {
		t.Setenv("AGENT_NAME", "")
		t.Setenv("USER", "shell-user")
		assert.Equal(t, "shell-user", ResolveAgent("", nil))
	})

	t.Run("unknown fallback", func(t *testing.T) {
		t.Setenv("AGENT_NAME", "")
		t.Setenv("USER", "")
		assert.Equal(t, UnknownAgent, ResolveAgent("", nil))
	})
}

func TestResolveRole(t *testing.T) {
	cfg := &Config{Agent: AgentConfig{Role: "cfg-role"}}

	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv("AGENT_ROLE", "env-role")
		assert.Equal(t, "cli-role", ResolveRole("cli-role", cfg))
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv("AGENT_ROLE", "env-role")
		assert.Equal(t, "env-role", ResolveRole("", cfg))
	})

	t.Run("config", func(t *testing.T) {
		t.Setenv("AGENT_ROLE", "")
		assert.Equal(t, "cfg-role", ResolveRole("", cfg))
	})

	t.Run("role is optional", func(t *testing.T) {
		t.Setenv("AGENT_ROLE", "")
		assert.Empty(t, ResolveRole("", nil))
	})
}

package cli

import (
	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/domain"
)

// resolveIdentity resolves the agent name and role for a new entry from the
// explicit flags, the environment, and the loaded config.
func resolveIdentity(c *app.Container, agent, role string) (string, string) {
	var cfg *domain.Config
	if c != nil {
		cfg = c.AppConfig
	}
	return domain.ResolveAgent(agent, cfg), domain.ResolveRole(role, cfg)
}

package dependency

import (
	"fmt"

	"github.com/convenehq/convene/infrastructure/security"
)

func (c *Container) initSecurity() error {
	switch c.Config.Security.TokenSource {
	case "static":
		c.TokenValidator = security.StaticTokenValidator(c.Config.Security.CreationToken)
	case "database":
		c.TokenValidator = security.APIKeyTokenValidator(c.APIKeyRepo)
	default:
		return fmt.Errorf("unknown token source %q", c.Config.Security.TokenSource)
	}

	c.Logger.Info("Creation token validator initialized successfully")
	return nil
}

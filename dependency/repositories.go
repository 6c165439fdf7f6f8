package dependency

import (
	"fmt"

	"github.com/convenehq/convene/infrastructure/persistence/database"
	"github.com/convenehq/convene/infrastructure/persistence/repository"
)

func (c *Container) initRepositories() error {
	switch c.Config.Storage.Driver {
	case "postgres":
		db := database.GetDb()
		c.MeetingRepo = repository.NewMeetingRepository(db)
		c.LinkRepo = repository.NewLinkRepository(db)
		c.APIKeyRepo = repository.NewAPIKeyRepository(db)
	case "memory":
		c.MeetingRepo = repository.NewInMemoryMeetingRepository()
		c.LinkRepo = repository.NewInMemoryLinkRepository()
		c.APIKeyRepo = repository.NewInMemoryAPIKeyRepository()
	default:
		return fmt.Errorf("unknown storage driver %q", c.Config.Storage.Driver)
	}

	c.Logger.Info("Repositories initialized successfully")
	return nil
}

package dependency

import (
	linkUseCase "github.com/convenehq/convene/application/usecases/link"
	meetingUseCase "github.com/convenehq/convene/application/usecases/meeting"
)

func (c *Container) initUseCases() {
	c.MeetingUC = meetingUseCase.NewMeetingUseCase(c.MeetingRepo, c.TokenValidator, c.Logger)
	c.LinkUC = linkUseCase.NewLinkUseCase(c.LinkRepo, c.MeetingRepo, c.TokenValidator, c.Logger)

	c.Logger.Info("Use cases initialized successfully")
}

package dependency

import (
	linkCtrl "github.com/convenehq/convene/presentation/controllers/link"
	meetingCtrl "github.com/convenehq/convene/presentation/controllers/meeting"
	"github.com/convenehq/convene/presentation/middlewares"
	"github.com/gin-gonic/gin/binding"
)

func (c *Container) initMiddleware() {
	binding.Validator = &middlewares.DefaultValidator{}

	c.Logger.Info("Validator engine registered successfully")
}

func (c *Container) initControllers() {
	c.MeetingController = meetingCtrl.NewMeetingController(c.MeetingUC)
	c.LinkController = linkCtrl.NewLinkController(c.LinkUC)

	c.Logger.Info("Controllers initialized successfully")
}

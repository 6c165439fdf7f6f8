package routes

import (
	"github.com/convenehq/convene/presentation/controllers/meeting"
	"github.com/gin-gonic/gin"
)

func MeetingRoutes(router *gin.RouterGroup, controller meeting.MeetingController) {
	meetings := router.Group("/meetings")
	{
		meetings.GET("/list", controller.ListMeetings)
		meetings.GET("/:meeting_id", controller.GetMeeting)
		meetings.POST("/create/:token", controller.CreateMeeting)
	}
}

package routes

import (
	"github.com/convenehq/convene/presentation/controllers/link"
	"github.com/gin-gonic/gin"
)

func LinkRoutes(router *gin.RouterGroup, controller link.LinkController) {
	links := router.Group("/meetings/:meeting_id/links")
	{
		links.GET("/list", controller.ListLinks)
		links.GET("/:link_id", controller.GetLink)
		links.POST("/create/:token", controller.CreateLink)
	}
}

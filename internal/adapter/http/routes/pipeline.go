package routes

import (
	"github.com/asbrown77/bagile-platform-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks  = "/webhooks"
	PathOrders    = "/orders"
	PathStudents  = "/students"
	PathSchedules = "/schedules"
	PathTransfers = "/transfers"
)

func addPipelineRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler, queryHandler *handlers.QueryHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/:source", webhookHandler.Receive)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", queryHandler.ListOrders)
		orders.GET("/:id", queryHandler.GetOrder)
	}

	students := rg.Group(PathStudents)
	{
		students.GET("", queryHandler.ListStudents)
		students.GET("/:email/enrolments", queryHandler.GetStudentEnrolments)
	}

	schedules := rg.Group(PathSchedules)
	{
		schedules.GET("", queryHandler.ListSchedules)
	}

	transfers := rg.Group(PathTransfers)
	{
		transfers.GET("", queryHandler.ListTransfers)
	}
}

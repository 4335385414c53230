package routes

import (
	"gestao_producao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders          = "/orders"
	PathDashboard       = "/dashboard"
	PathReports         = "/reports"
	PathPublicSchedules = "/public/schedules"
)

func addProductionRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, appointmentHandler *handlers.AppointmentHandler, dashboardHandler *handlers.DashboardHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/complete", orderHandler.CompleteOrder)
		orders.PATCH("/:id/cancel", orderHandler.CancelOrder)

		// Shop-floor appointments (QR code reader).
		orders.POST("/:id/appointments", appointmentHandler.CreateAppointment)
		orders.GET("/:id/appointments", appointmentHandler.ListAppointments)
	}

	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
	rg.GET(PathReports+"/schedule.xlsx", dashboardHandler.ExportSchedule)

	// Customer share links; the token is the only credential.
	rg.GET(PathPublicSchedules+"/:token", orderHandler.GetPublicSchedule)
}

package routes

import (
	"context"
	"os"

	_ "gestao_producao/docs" // generated by swag init
	"gestao_producao/internal/adapter/http/handlers"
	"gestao_producao/internal/adapter/http/middleware"
	"gestao_producao/internal/adapter/persistence/repository"
	"gestao_producao/internal/infrastructure/database"
	"gestao_producao/internal/infrastructure/locking"
	"gestao_producao/internal/infrastructure/logger"
	"gestao_producao/internal/infrastructure/reports"
	"gestao_producao/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	log := logger.GetLogger()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	log.WithField("port", port).Info("[http][server] listening")
	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("[http][server] failed to start")
	}
}

func getRoutes() {
	log := logger.GetLogger()
	ddb := database.ConnectDynamoDB()

	rdb, err := database.ConnectRedis(context.Background())
	locker, err := locking.NewOrderLockerFromEnv(rdb, err)
	if err != nil {
		log.WithError(err).Fatal("[http][server] order locking unavailable")
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	appointmentRepo := repository.NewAppointmentDynamoRepository(ddb)

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	appointmentUseCase := usecase.NewAppointmentUseCase(orderRepo, appointmentRepo, locker)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo, appointmentRepo)
	reportUseCase := usecase.NewReportUseCase(orderRepo, reports.NewExcelScheduleExporter())

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProductionRoutes(v1,
		handlers.NewOrderHandler(orderUseCase),
		handlers.NewAppointmentHandler(appointmentUseCase),
		handlers.NewDashboardHandler(dashboardUseCase, reportUseCase),
	)
}

func setMiddlewares() {
	log := logger.GetLogger()
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("request_id", middleware.RequestID(c)).Errorf("[http][server] recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

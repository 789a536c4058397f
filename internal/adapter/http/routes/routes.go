package routes

import (
	"log"
	"strconv"

	_ "github.com/asbrown77/bagile-platform-sub000/docs" // This will be auto-generated
	"github.com/asbrown77/bagile-platform-sub000/internal/adapter/http/handlers"
	repository2 "github.com/asbrown77/bagile-platform-sub000/internal/adapter/persistence/repository"
	"github.com/asbrown77/bagile-platform-sub000/internal/infrastructure/database"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	rawEventRepo := repository2.NewRawEventDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	studentRepo := repository2.NewStudentDynamoRepository(ddb)
	scheduleRepo := repository2.NewCourseScheduleDynamoRepository(ddb)
	enrolmentRepo := repository2.NewEnrolmentDynamoRepository(ddb)

	ingestUseCase := usecase.NewIngestUseCase(rawEventRepo)
	queryUseCase := usecase.NewQueryUseCase(orderRepo, studentRepo, scheduleRepo, enrolmentRepo)

	webhookHandler := handlers.NewWebhookHandler(ingestUseCase)
	queryHandler := handlers.NewQueryHandler(queryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPipelineRoutes(v1, webhookHandler, queryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

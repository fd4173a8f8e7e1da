package routes

import (
	"context"
	"os"
	"strconv"

	_ "vetdesk/docs" // swagger registration
	"vetdesk/internal/adapter/http/handlers"
	"vetdesk/internal/adapter/persistence/repository"
	"vetdesk/internal/infrastructure/database"
	"vetdesk/internal/infrastructure/events"
	"vetdesk/internal/infrastructure/lookup"
	"vetdesk/internal/infrastructure/payments"
	"vetdesk/internal/usecase"
	"vetdesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	attendanceRepo := repository.NewAttendanceDynamoRepository(ddb)
	catalogRepo := repository.NewCatalogMemoryRepository()
	planDirectory := lookup.NewPlanDirectory()
	eventPublisher := events.NewLogPublisher()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	attendanceUseCase := usecase.NewAttendanceUseCase(attendanceRepo, eventPublisher)
	attendanceUseCase.RestoreDraft(context.Background())

	sessionUseCase := usecase.NewSessionUseCase(attendanceUseCase, catalogRepo, planDirectory, paymentGateway, eventPublisher)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	catalogHandler := handlers.NewCatalogHandler(sessionUseCase)
	cartHandler := handlers.NewCartHandler(sessionUseCase)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceUseCase, sessionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, sessionHandler, catalogHandler, cartHandler)
	addAttendanceRoutes(v1, attendanceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("recovered", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

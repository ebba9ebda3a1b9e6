package routes

import (
	"log"
	"os"

	_ "shajghor/docs"
	"shajghor/internal/adapter/http/handlers"
	"shajghor/internal/adapter/http/middleware"
	"shajghor/internal/adapter/persistence/repository"
	"shajghor/internal/infrastructure/database"
	"shajghor/internal/infrastructure/identity"
	"shajghor/internal/infrastructure/metrics"
	"shajghor/internal/infrastructure/payments"
	"shajghor/internal/usecase"
	"shajghor/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// handlerSet groups every HTTP handler and the identity middlewares the
// route files attach.
type handlerSet struct {
	requireIdentity  gin.HandlerFunc
	optionalIdentity gin.HandlerFunc

	accounts  *handlers.AccountHandler
	identity  *handlers.IdentityHandler
	services  *handlers.ServiceHandler
	bookings  *handlers.BookingHandler
	payments  *handlers.PaymentHandler
	analytics *handlers.AnalyticsHandler
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	accountRepo := repository.NewAccountDynamoRepository(ddb)
	serviceRepo := repository.NewServiceDynamoRepository(ddb)
	bookingRepo := repository.NewBookingDynamoRepository(ddb)

	tokens, err := identity.NewJWTServiceFromEnv()
	if err != nil {
		log.Fatalf("identity token service not configured: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	guard := usecase.NewAuthorizationGuard(accountRepo)
	identityUseCase := usecase.NewIdentityUseCase(accountRepo, tokens)

	h := handlerSet{
		requireIdentity:  middleware.RequireIdentity(identityUseCase),
		optionalIdentity: middleware.OptionalIdentity(identityUseCase),

		accounts:  handlers.NewAccountHandler(usecase.NewAccountUseCase(accountRepo, guard)),
		identity:  handlers.NewIdentityHandler(identityUseCase),
		services:  handlers.NewServiceHandler(usecase.NewServiceCatalogUseCase(serviceRepo, guard)),
		bookings:  handlers.NewBookingHandler(usecase.NewBookingUseCase(bookingRepo, usecase.DefaultBookingPolicies(guard), metrics.BookingObserver{})),
		payments:  handlers.NewPaymentHandler(usecase.NewPaymentUseCase(paymentGateway)),
		analytics: handlers.NewAnalyticsHandler(usecase.NewAnalyticsUseCase(bookingRepo, guard)),
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAccountRoutes(v1, h)
	addServiceRoutes(v1, h)
	addBookingRoutes(v1, h)
	addAdminRoutes(v1, h)
}

func setMiddlewares() {
	metrics.Register()
	router.Use(metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	_ "eagles_transportes/docs" // swagger spec registration
	request "eagles_transportes/internal/adapter/http/dto/request"
	"eagles_transportes/internal/adapter/http/handlers"
	repository2 "eagles_transportes/internal/adapter/persistence/repository"
	"eagles_transportes/internal/config"
	"eagles_transportes/internal/infrastructure/database"
	"eagles_transportes/internal/infrastructure/payments"
	"eagles_transportes/internal/infrastructure/storage"
	"eagles_transportes/internal/usecase"
	"eagles_transportes/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Freight   *handlers.FreightHandler
	Billing   *handlers.BillingHandler
	Dashboard *handlers.DashboardHandler
	Client    *handlers.ClientHandler
	Driver    *handlers.DriverHandler
	Financial *handlers.FinancialHandler
}

// Run wires the dependencies and serves until SIGINT/SIGTERM.
func Run(cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	request.SetLocation(cfg.Location)

	evidence, err := storage.NewBoltFileStorage(cfg.Storage.EvidenceDBPath)
	if err != nil {
		log.Fatalf("Failed to open evidence storage: %v", err)
	}
	defer func() {
		if err := evidence.Close(); err != nil {
			log.Printf("[storage] close failed err=%v", err)
		}
	}()

	h := buildHandlers(ctx, cfg, evidence)
	router := NewRouter(h)

	srv := &http.Server{Addr: cfg.HTTP.Addr(), Handler: router}
	go func() {
		log.Printf("[http] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[http] shutting down timeout=%s", cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown failed err=%v", err)
	}
}

func buildHandlers(ctx context.Context, cfg config.Config, evidence interfaces.IFileStorage) Handlers {
	ddb := database.ConnectDynamoDB(ctx, cfg.AWS)

	freightRepo := repository2.NewFreightDynamoRepository(ddb, cfg.Tables.Freights)
	clientRepo := repository2.NewClientDynamoRepository(ddb, cfg.Tables.Clients)
	driverRepo := repository2.NewDriverDynamoRepository(ddb, cfg.Tables.Drivers)
	txRepo := repository2.NewTransactionDynamoRepository(ddb, cfg.Tables.Transactions)
	intentRepo := repository2.NewBillingIntentDynamoRepository(ddb, cfg.Tables.BillingIntents)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	freightUseCase := usecase.NewFreightUseCase(freightRepo, clientRepo, driverRepo, evidence)
	billingUseCase := usecase.NewBillingUseCase(freightRepo, clientRepo, txRepo, intentRepo, paymentGateway, cfg.Payments.Timeout)
	analyticsUseCase := usecase.NewAnalyticsUseCase(freightRepo, driverRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	driverUseCase := usecase.NewDriverUseCase(driverRepo, evidence)
	financialUseCase := usecase.NewFinancialUseCase(txRepo)

	return Handlers{
		Freight:   handlers.NewFreightHandler(freightUseCase),
		Billing:   handlers.NewBillingHandler(billingUseCase),
		Dashboard: handlers.NewDashboardHandler(analyticsUseCase, cfg.Location),
		Client:    handlers.NewClientHandler(clientUseCase),
		Driver:    handlers.NewDriverHandler(driverUseCase),
		Financial: handlers.NewFinancialHandler(financialUseCase, cfg.Location),
	}
}

// NewRouter mounts middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFreightRoutes(v1, h.Freight)
	addBillingRoutes(v1, h.Billing)
	addDashboardRoutes(v1, h.Dashboard)
	addClientRoutes(v1, h.Client)
	addDriverRoutes(v1, h.Driver)
	addFinancialRoutes(v1, h.Financial)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

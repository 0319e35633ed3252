package routes

import (
	"context"
	"log"

	_ "swiftprints/docs" // This will be auto-generated
	"swiftprints/internal/adapter/http/handlers"
	repository2 "swiftprints/internal/adapter/persistence/repository"
	"swiftprints/internal/config"
	"swiftprints/internal/infrastructure/cache"
	"swiftprints/internal/infrastructure/database"
	"swiftprints/internal/infrastructure/email"
	"swiftprints/internal/infrastructure/slicer"
	"swiftprints/internal/infrastructure/storage"
	"swiftprints/internal/realtime"
	"swiftprints/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	db, err := database.ConnectMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	if err := repository2.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	rdb := cache.NewClient(cfg.RedisAddr)

	blobs, err := storage.FromConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to configure blob storage: %v", err)
	}

	notifier, err := email.FromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to configure email channel: %v", err)
	}

	printerRepo := repository2.NewPrinterMySQLRepository(db)
	filamentRepo := repository2.NewFilamentMySQLRepository(db)
	uploadRepo := repository2.NewUploadMySQLRepository(db)
	orderRepo := repository2.NewOrderMySQLRepository(db)

	slicerRunner := slicer.NewPrusaRunner(cfg.SlicerImage, cfg.SlicerWorkDir)

	hub := realtime.NewHub()
	publisher := realtime.NewRedisPublisher(rdb)
	go realtime.Subscribe(context.Background(), rdb, hub)

	authUseCase := usecase.NewAuthUseCase(cfg)
	catalogUseCase := usecase.NewCatalogUseCase(printerRepo, filamentRepo)
	uploadUseCase := usecase.NewUploadUseCase(uploadRepo, blobs)
	pricingUseCase := usecase.NewPricingUseCase(uploadRepo, printerRepo, filamentRepo, slicerRunner, blobs, cache.NewRedisCache(rdb))
	orderUseCase := usecase.NewOrderUseCase(orderRepo, pricingUseCase, notifier, publisher)

	authHandler := handlers.NewAuthHandler(authUseCase)
	printerHandler := handlers.NewPrinterHandler(catalogUseCase)
	uploadHandler := handlers.NewUploadHandler(uploadUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	wsHandler := handlers.NewWSHandler(hub)

	root := router.Group("")
	addPingRoutes(root)
	addMarketplaceRoutes(root, authHandler, uploadHandler, printerHandler, pricingHandler, orderHandler, wsHandler)
	addAdminRoutes(root, authHandler, printerHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

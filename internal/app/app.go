package app

import (
	"database/sql"
	"fmt"
	"log"

	"agrimach/internal/config"
	"agrimach/internal/handlers"
	"agrimach/internal/pdf"
	"agrimach/internal/repositories"
	"agrimach/internal/routes"
	"agrimach/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "agrimach/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === Directories ===
	// The deal store itself is in-memory; only the reference directories
	// (products, customers, leads, regions) can live in Postgres.
	var (
		products  services.ProductDirectory
		catalog   handlers.ProductCatalog
		customers services.CustomerDirectory
		leads     services.LeadDirectory
		regions   handlers.RegionDirectory
	)
	if cfg.Database.DSN != "" {
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			log.Fatal("failed to open database: ", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("failed to close database: %v", err)
			}
		}()

		productRepo := repositories.NewProductRepository(db)
		products = productRepo
		catalog = productRepo
		customers = repositories.NewCustomerRepository(db)
		leads = repositories.NewLeadRepository(db)
		regions = repositories.NewRegionRepository(db)
	} else {
		log.Printf("[app] no database configured, serving directories from seed")
		productRepo := repositories.NewMemoryProductRepository(repositories.DefaultProducts())
		products = productRepo
		catalog = productRepo
		customers = repositories.NewMemoryCustomerRepository(repositories.DefaultCustomers())
		leads = repositories.NewMemoryLeadRepository(repositories.DefaultLeads())
		regions = repositories.NewMemoryRegionRepository(repositories.DefaultRegions())
	}

	// === Repos ===
	dealRepo := repositories.NewDealRepository()

	// === Services ===
	dealService := services.NewDealService(dealRepo, products, customers, leads)
	reportGen := pdf.NewReportGenerator(cfg.Files.RootDir)
	forecastService := services.NewForecastService(dealService, reportGen)

	// === Handlers ===
	dealHandler := handlers.NewDealHandler(dealService)
	stageHandler := handlers.NewStageHandler()
	forecastHandler := handlers.NewForecastHandler(forecastService)
	regionHandler := handlers.NewRegionHandler(regions)
	productHandler := handlers.NewProductHandler(catalog)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		dealHandler,
		stageHandler,
		forecastHandler,
		regionHandler,
		productHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server stopped: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

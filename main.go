package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shoppos/config"
	"shoppos/controllers"
	"shoppos/middleware"
	"shoppos/routes"
	"shoppos/store"
	"shoppos/utils"

	"time"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	cfg := config.Load()
	utils.SetJWTSecret(cfg.JWTSecret)

	gin.SetMode(gin.ReleaseMode)
	log.Printf("Running in %s mode", gin.Mode())

	r := gin.Default()

	middleware.InitMetrics()
	r.Use(middleware.PrometheusMiddleware())

	// /metrics endpoint
	r.GET("/metrics", func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Snapshot storage: Mongo when configured, JSON files otherwise.
	var snaps store.Snapshotter
	if cfg.MongoURI != "" {
		snaps = store.NewMongoSnapshots(config.ConnectDatabase(cfg.MongoURI))
	} else {
		snaps = store.NewFileSnapshots(cfg.DataDir)
	}

	// Stores are constructed before any route wiring; the session store and
	// the ledger come first.
	sessions := store.NewSessionStore(snaps)
	products := store.NewProductStore(snaps)
	receipts := store.NewReceiptStore(snaps)
	purchases := store.NewPurchaseStore(snaps)
	settings := store.NewSettingsStore(snaps)

	// Daily restock reminder.
	s := gocron.NewScheduler(time.Local)
	s.Every(1).Day().At("07:00").Do(utils.CheckLowStock, products)
	s.StartAsync()

	routes.InitializeRoutes(r, routes.Controllers{
		Auth:      controllers.NewAuthController(controllers.SelfAsserted{}, sessions),
		Products:  controllers.NewProductController(products),
		Sales:     controllers.NewSalesController(products, receipts),
		Receipts:  controllers.NewReceiptController(receipts, settings, cfg.SMTP),
		Purchases: controllers.NewPurchaseController(purchases),
		Reports:   controllers.NewReportsController(receipts),
		Dashboard: controllers.NewDashboardController(products, receipts),
		Settings:  controllers.NewSettingsController(settings),
	})

	r.Run(":" + cfg.Port)
}

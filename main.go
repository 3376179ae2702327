package main

import (
	"log"
	"storefront/config"
	_ "storefront/docs"
	"storefront/middleware"
	"storefront/routes"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Storefront API
// @version 1.0
// @description Minimal e-commerce storefront: catalog, cart, checkout, accounts
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if err := utils.InitLogger(config.AppConfig.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.SyncLogger()
	logger := utils.GetLogger()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	logger.Info("Server starting",
		zap.String("port", config.AppConfig.Port),
		zap.String("env", config.AppConfig.AppEnv),
	)
	logger.Info("Swagger UI available", zap.String("url", "http://localhost:"+config.AppConfig.Port+"/swagger/index.html"))

	if err := router.Run(port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

package main

import (
	"fmt"

	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/routes"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize Gin router
	router := setupRouter(configuration, db)

	// Start the server
	addr := fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)
	log.Infof("Starting server on %s", addr)
	checkPanicErr(router.Run(addr))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and applies the configured level
// to every package logger
func setUpLogger(conf *config.Config) {
	level := conf.Level()
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(level)
	database.SetLogLevel(level)
	services.SetLogLevel(level)
	controllers.SetLogLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates and optionally seeds the store
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver: conf.DBDriver,
		URL:    conf.DatabaseURL,
	})
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedDB {
		_, err = database.SeedDatabase(db)
		checkPanicErr(err)
	}
	return db
}

// setupRouter builds the Gin router with every route and middleware
func setupRouter(conf *config.Config, db *gorm.DB) *gin.Engine {
	return routes.NewRouter(db, routes.Options{
		AuthRequired:   conf.AuthRequired,
		JWTSecret:      conf.JWTSecret,
		AllowedOrigins: conf.CORSAllowedOrigins,
		Logger:         log.StandardLogger(),
		Metrics:        metrics.NewManager(),
	})
}

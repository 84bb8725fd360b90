package routes

import (
	"net/http"
	"slices"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options controls the optional parts of the router
type Options struct {
	// AuthRequired guards the mutating routes with JWTAuth and the admin role
	AuthRequired bool
	JWTSecret    string
	// AllowedOrigins feeds the CORS middleware; "*" allows any origin
	AllowedOrigins []string
	Logger         *logrus.Logger
	Metrics        *metrics.Manager
}

// NewRouter wires services, controllers and middleware onto a gin engine
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewManager()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.Metrics(opts.Metrics))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	pizzaService := services.NewPizzaService(db)
	restaurantService := services.NewRestaurantService(db)
	restaurantPizzaService := services.NewRestaurantPizzaService(db)

	pizzaController := controllers.NewPizzaController(pizzaService)
	restaurantController := controllers.NewRestaurantController(restaurantService, opts.Metrics)
	restaurantPizzaController := controllers.NewRestaurantPizzaController(
		restaurantPizzaService, pizzaService, restaurantService, opts.Metrics)

	// Mutating routes optionally require an admin bearer token
	var guard []gin.HandlerFunc
	if opts.AuthRequired {
		guard = append(guard, middleware.JWTAuth([]byte(opts.JWTSecret)), middleware.RequireRole("admin"))
	}

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", guarded(guard, restaurantController.DeleteRestaurant)...)
	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.POST("/restaurant_pizzas", guarded(guard, restaurantPizzaController.CreateRestaurantPizza)...)

	router.GET("/health", healthCheckHandler(db))
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func guarded(guard []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	return append(slices.Clone(guard), handler)
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	config.AllowHeaders = []string{"Authorization", "Content-Type", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}

	if len(origins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	for _, origin := range origins {
		if origin == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}
	config.AllowOrigins = origins
	return config
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "pizza-restaurants-api",
		})
	}
}

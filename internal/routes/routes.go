package routes

import (
	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Controllers groups every controller the router dispatches to
type Controllers struct {
	Restaurant      controllers.RestaurantController
	Pizza           controllers.PizzaController
	RestaurantPizza controllers.RestaurantPizzaController
}

// NewControllers wires services and controllers on top of db
func NewControllers(db *gorm.DB) Controllers {
	restaurantService := services.NewRestaurantService(db)
	pizzaService := services.NewPizzaService(db)
	restaurantPizzaService := services.NewRestaurantPizzaService(db)

	return Controllers{
		Restaurant:      controllers.NewRestaurantController(restaurantService),
		Pizza:           controllers.NewPizzaController(pizzaService),
		RestaurantPizza: controllers.NewRestaurantPizzaController(restaurantPizzaService, restaurantService, pizzaService),
	}
}

// NewRouter builds the gin engine with middlewares and every route registered
func NewRouter(db *gorm.DB, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		gin.Recovery(),
		middleware.CORS(allowedOrigins),
	)

	RegisterRoutes(router, NewControllers(db))
	return router
}

// RegisterRoutes defines the routes for the Gin router
func RegisterRoutes(router *gin.Engine, c Controllers) {
	router.GET("/", controllers.Index)
	router.GET("/health", controllers.HealthCheck)

	router.GET("/restaurants", c.Restaurant.GetAllRestaurants)
	router.GET("/restaurants/:id", c.Restaurant.GetRestaurantByID)
	router.DELETE("/restaurants/:id", c.Restaurant.DeleteRestaurant)

	router.GET("/pizzas", c.Pizza.GetAllPizzas)

	router.POST("/restaurant_pizzas", c.RestaurantPizza.CreateRestaurantPizza)
	router.GET("/restaurant_pizzas/:id", c.RestaurantPizza.GetRestaurantPizzaByID)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

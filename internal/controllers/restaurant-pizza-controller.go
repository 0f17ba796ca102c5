package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreateRestaurantPizzaRequest documents the body of POST /restaurant_pizzas
type CreateRestaurantPizzaRequest struct {
	Price        int `json:"price"`
	PizzaID      int `json:"pizza_id"`
	RestaurantID int `json:"restaurant_id"`
}

// restaurantPizzaFields must all be present and non-null in a creation body
var restaurantPizzaFields = []string{"price", "pizza_id", "restaurant_id"}

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant's menu at a given price
	CreateRestaurantPizza(c *gin.Context)
	// GetRestaurantPizzaByID retrieves a single restaurant pizza
	GetRestaurantPizzaByID(c *gin.Context)
}

type restaurantPizzaController struct {
	service           services.RestaurantPizzaService
	restaurantService services.RestaurantService
	pizzaService      services.PizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService, restaurantService services.RestaurantService, pizzaService services.PizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{
		service:           service,
		restaurantService: restaurantService,
		pizzaService:      pizzaService,
	}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Sell an existing pizza at an existing restaurant. Price must be an integer between 1 and 30, decimals such as 15.0 are rejected.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaCreated
// @Failure 400 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	logger := middleware.LoggerFrom(ctx)

	// anything but a JSON object carries none of the fields
	var body map[string]json.RawMessage
	if err := ctx.ShouldBindJSON(&body); err != nil {
		logger.WithError(err).Info("Rejected restaurant pizza body that is not a JSON object")
		rejectRestaurantPizza(ctx, models.MsgMissingData)
		return
	}
	for _, field := range restaurantPizzaFields {
		if raw, ok := body[field]; !ok || string(raw) == "null" {
			rejectRestaurantPizza(ctx, models.MsgMissingData)
			return
		}
	}

	// an id that is not an integer cannot match any row
	var req CreateRestaurantPizzaRequest
	if json.Unmarshal(body["pizza_id"], &req.PizzaID) != nil || json.Unmarshal(body["restaurant_id"], &req.RestaurantID) != nil {
		rejectRestaurantPizza(ctx, models.MsgReferenceNotFound)
		return
	}

	requestCtx := ctx.Request.Context()
	_, pizzaErr := c.pizzaService.GetPizzaByID(requestCtx, req.PizzaID)
	_, restaurantErr := c.restaurantService.GetRestaurantByID(requestCtx, req.RestaurantID)
	for _, err := range []error{pizzaErr, restaurantErr} {
		if err != nil && !errors.Is(err, models.ErrPizzaNotFound) && !errors.Is(err, models.ErrRestaurantNotFound) {
			logger.WithError(err).Error("Failed to look up restaurant pizza references")
			ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to create restaurant pizza"))
			return
		}
	}
	if pizzaErr != nil || restaurantErr != nil {
		rejectRestaurantPizza(ctx, models.MsgReferenceNotFound)
		return
	}

	if err := json.Unmarshal(body["price"], &req.Price); err != nil || !models.ValidPrice(req.Price) {
		rejectRestaurantPizza(ctx, models.MsgValidationErrors)
		return
	}

	// a store failure here is reported exactly like an invalid price
	restaurantPizza, err := c.service.CreateRestaurantPizza(requestCtx, req.RestaurantID, req.PizzaID, req.Price)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"restaurant_id":        req.RestaurantID,
			"pizza_id":             req.PizzaID,
			"price":                req.Price,
			"constraint_violation": isConstraintViolation(err),
		}).Warn("Failed to create restaurant pizza")
		rejectRestaurantPizza(ctx, models.MsgValidationErrors)
		return
	}

	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaCreated(restaurantPizza))
}

// GetRestaurantPizzaByID godoc
// @Summary Get restaurant pizza by ID
// @Description Get a restaurant pizza with its restaurant name and pizza name and ingredients
// @Tags restaurant_pizzas
// @Produce json
// @Param id path int true "RestaurantPizza ID"
// @Success 200 {object} models.RestaurantPizzaView
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas/{id} [get]
func (c *restaurantPizzaController) GetRestaurantPizzaByID(ctx *gin.Context) {
	restaurantPizzaID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantPizzaNotFound))
		return
	}

	restaurantPizza, err := c.service.GetRestaurantPizzaByID(ctx.Request.Context(), restaurantPizzaID)
	if err != nil {
		if errors.Is(err, models.ErrRestaurantPizzaNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantPizzaNotFound))
			return
		}
		middleware.LoggerFrom(ctx).WithError(err).Error("Failed to retrieve restaurant pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant pizza"))
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantPizzaView(restaurantPizza))
}

func isConstraintViolation(err error) bool {
	var validationErr *models.ValidationError
	return errors.As(err, &validationErr) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func rejectRestaurantPizza(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(message))
}

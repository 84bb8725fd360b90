package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza offers a pizza at a restaurant for a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service     services.RestaurantPizzaService
	pizzas      services.PizzaService
	restaurants services.RestaurantService
	metrics     *metrics.Manager
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(
	service services.RestaurantPizzaService,
	pizzas services.PizzaService,
	restaurants services.RestaurantService,
	m *metrics.Manager,
) RestaurantPizzaController {
	return &restaurantPizzaController{
		service:     service,
		pizzas:      pizzas,
		restaurants: restaurants,
		metrics:     m,
	}
}

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas.
// Fields are pointers so that absent and null values can be told apart from zero.
type CreateRestaurantPizzaRequest struct {
	Price        *float64 `json:"price" example:"10"`
	PizzaID      *int     `json:"pizza_id" example:"1"`
	RestaurantID *int     `json:"restaurant_id" example:"3"`
}

// missingFields lists one message per absent field, in body order
func (r *CreateRestaurantPizzaRequest) missingFields() []string {
	var errs []string
	if r.Price == nil {
		errs = append(errs, "price is required")
	}
	if r.PizzaID == nil {
		errs = append(errs, "pizza_id is required")
	}
	if r.RestaurantID == nil {
		errs = append(errs, "restaurant_id is required")
	}
	return errs
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaResponse
// @Failure 400 {object} models.ErrorsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorsResponse
// @Security BearerAuth
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.reject(ctx, http.StatusBadRequest, "bad_request", models.MsgInvalidBody)
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		c.reject(ctx, http.StatusBadRequest, "missing_fields", missing...)
		return
	}

	if _, err := c.pizzas.GetPizzaByID(*req.PizzaID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.reject(ctx, http.StatusNotFound, "not_found", fmt.Sprintf("Pizza id %d not found", *req.PizzaID))
			return
		}
		logFailure(ctx, err, "Failed to look up pizza")
		c.reject(ctx, http.StatusInternalServerError, "unexpected", models.MsgUnexpectedError)
		return
	}

	if _, err := c.restaurants.GetRestaurantByID(*req.RestaurantID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.reject(ctx, http.StatusNotFound, "not_found", fmt.Sprintf("Restaurant id %d not found", *req.RestaurantID))
			return
		}
		logFailure(ctx, err, "Failed to look up restaurant")
		c.reject(ctx, http.StatusInternalServerError, "unexpected", models.MsgUnexpectedError)
		return
	}

	price := *req.Price
	if !models.PriceInRange(price) || price != math.Trunc(price) {
		c.reject(ctx, http.StatusBadRequest, "validation", models.MsgValidationErrors)
		return
	}

	whole := int(price)
	rp, err := models.NewRestaurantPizza(&whole, *req.PizzaID, *req.RestaurantID)
	if err != nil {
		c.reject(ctx, http.StatusBadRequest, "validation", models.MsgValidationErrors)
		return
	}

	created, err := c.service.CreateRestaurantPizza(rp)
	if err != nil {
		logFailure(ctx, err, "Failed to create restaurant pizza")
		c.reject(ctx, http.StatusInternalServerError, "unexpected", models.MsgUnexpectedError)
		return
	}

	c.metrics.RestaurantPizzaCreated()
	ctx.JSON(http.StatusCreated, created.Serialize(true, true))
}

func (c *restaurantPizzaController) reject(ctx *gin.Context, status int, reason string, messages ...string) {
	c.metrics.RestaurantPizzaRejected(reason)
	ctx.JSON(status, models.NewErrorsResponse(messages...))
}

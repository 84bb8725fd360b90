package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants without their pizzas
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
	metrics *metrics.Manager
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService, m *metrics.Manager) RestaurantController {
	return &restaurantController{service: service, metrics: m}
}

// restaurantID reads the integer id path parameter. Anything else does not
// name a restaurant and is reported as not found.
func restaurantID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		logFailure(ctx, err, "Failed to retrieve restaurants")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgUnexpectedError))
		return
	}

	resp := make([]models.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		resp = append(resp, restaurants[i].Serialize(false))
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with its restaurant pizzas and their pizzas
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := restaurantID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	restaurant, err := c.service.GetRestaurantWithPizzas(id)
	if errors.Is(err, services.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}
	if err != nil {
		logFailure(ctx, err, "Failed to retrieve restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgUnexpectedError))
		return
	}

	ctx.JSON(http.StatusOK, restaurant.Serialize(true))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant pizza referencing it
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := restaurantID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	err := c.service.DeleteRestaurant(id)
	if errors.Is(err, services.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}
	if err != nil {
		logFailure(ctx, err, "Failed to delete restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgUnexpectedError))
		return
	}

	c.metrics.RestaurantDeleted()
	ctx.Status(http.StatusNoContent)
}

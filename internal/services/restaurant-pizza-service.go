package services

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantPizzaService provides methods to interact with the restaurant_pizzas table
type RestaurantPizzaService interface {
	// CreateRestaurantPizza inserts the association and returns it with both parents loaded
	CreateRestaurantPizza(rp models.RestaurantPizza) (models.RestaurantPizza, error)
	// GetRestaurantPizzaByID retrieves an association with both parents loaded
	GetRestaurantPizzaByID(id int) (models.RestaurantPizza, error)
	// CountRestaurantPizzas returns the number of stored associations
	CountRestaurantPizzas() (int64, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(rp models.RestaurantPizza) (models.RestaurantPizza, error) {
	// parents are looked up by id, never written through the association
	rp.Pizza = nil
	rp.Restaurant = nil

	tx := s.db.Begin()
	if tx.Error != nil {
		return models.RestaurantPizza{}, tx.Error
	}

	if err := tx.Create(&rp).Error; err != nil {
		tx.Rollback()
		log.WithError(err).WithFields(logrus.Fields{
			"pizza_id":      rp.PizzaID,
			"restaurant_id": rp.RestaurantID,
		}).Error("Failed to insert restaurant pizza, rolled back")
		return models.RestaurantPizza{}, err
	}

	var created models.RestaurantPizza
	if err := tx.Preload("Pizza").Preload("Restaurant").First(&created, rp.ID).Error; err != nil {
		tx.Rollback()
		log.WithError(err).WithField("restaurant_pizza_id", rp.ID).Error("Failed to reload restaurant pizza, rolled back")
		return models.RestaurantPizza{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		log.WithError(err).Error("Failed to commit restaurant pizza")
		return models.RestaurantPizza{}, err
	}

	return created, nil
}

func (s *restaurantPizzaService) GetRestaurantPizzaByID(id int) (models.RestaurantPizza, error) {
	var rp models.RestaurantPizza
	if err := s.db.Preload("Pizza").Preload("Restaurant").First(&rp, id).Error; err != nil {
		return models.RestaurantPizza{}, translateError(err)
	}
	return rp, nil
}

func (s *restaurantPizzaService) CountRestaurantPizzas() (int64, error) {
	var count int64
	if err := s.db.Model(&models.RestaurantPizza{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

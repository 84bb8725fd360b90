package services

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants ordered by id, without associations
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(id int) (models.Restaurant, error)
	// GetRestaurantWithPizzas retrieves a restaurant with its associations and their pizzas
	GetRestaurantWithPizzas(id int) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and every RestaurantPizza referencing it
	DeleteRestaurant(id int) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, id).Error; err != nil {
		return models.Restaurant{}, translateError(err)
	}
	return restaurant, nil
}

func (s *restaurantService) GetRestaurantWithPizzas(id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, translateError(err)
	}
	return restaurant, nil
}

// DeleteRestaurant removes the dependent associations before the restaurant itself,
// all inside one transaction, so nothing is left behind when the store does not
// enforce ON DELETE CASCADE.
func (s *restaurantService) DeleteRestaurant(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return translateError(err)
		}

		cascaded := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{})
		if cascaded.Error != nil {
			return cascaded.Error
		}

		if err := tx.Delete(&restaurant).Error; err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"restaurant_id":     id,
			"restaurant_pizzas": cascaded.RowsAffected,
		}).Info("Restaurant deleted")
		return nil
	})
}

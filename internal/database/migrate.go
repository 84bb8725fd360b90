package database

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	return db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{})
}

// SeedDatabase inserts sample restaurants, pizzas and associations when no restaurant exists yet.
// It reports whether anything was written.
func SeedDatabase(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	err := db.Transaction(func(tx *gorm.DB) error {
		restaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}

		pizzas := []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}

		associations := []models.RestaurantPizza{
			{Price: 1, RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID},
			{Price: 4, RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID},
			{Price: 5, RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID},
		}
		return tx.Create(&associations).Error
	})
	if err != nil {
		return false, err
	}

	log.Info("Database seeded successfully")
	return true, nil
}

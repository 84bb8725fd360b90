package services

import (
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     "sqlite",
		URL:        "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxRetries: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	restaurants []models.Restaurant
	pizzas      []models.Pizza
}

func seed(t *testing.T, db *gorm.DB) fixture {
	f := fixture{
		restaurants: []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
		},
		pizzas: []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		},
	}
	require.NoError(t, db.Create(&f.restaurants).Error)
	require.NoError(t, db.Create(&f.pizzas).Error)
	return f
}

func TestPizzaService(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	service := NewPizzaService(db)

	pizzas, err := service.GetAllPizzas()
	require.NoError(t, err)
	require.Len(t, pizzas, 2)
	assert.Equal(t, "Emma", pizzas[0].Name)
	assert.Equal(t, "Geri", pizzas[1].Name)

	pizza, err := service.GetPizzaByID(f.pizzas[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Geri", pizza.Name)

	_, err = service.GetPizzaByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestaurantService(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	service := NewRestaurantService(db)
	rpService := NewRestaurantPizzaService(db)

	first, err := rpService.CreateRestaurantPizza(models.RestaurantPizza{Price: 10, PizzaID: f.pizzas[1].ID, RestaurantID: f.restaurants[0].ID})
	require.NoError(t, err)
	second, err := rpService.CreateRestaurantPizza(models.RestaurantPizza{Price: 4, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[0].ID})
	require.NoError(t, err)
	other, err := rpService.CreateRestaurantPizza(models.RestaurantPizza{Price: 7, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[1].ID})
	require.NoError(t, err)

	t.Run("get all", func(t *testing.T) {
		restaurants, err := service.GetAllRestaurants()
		require.NoError(t, err)
		require.Len(t, restaurants, 2)
		assert.Equal(t, f.restaurants[0].ID, restaurants[0].ID)
		assert.Empty(t, restaurants[0].RestaurantPizzas)
	})

	t.Run("get with pizzas", func(t *testing.T) {
		restaurant, err := service.GetRestaurantWithPizzas(f.restaurants[0].ID)
		require.NoError(t, err)
		require.Len(t, restaurant.RestaurantPizzas, 2)
		assert.Equal(t, first.ID, restaurant.RestaurantPizzas[0].ID)
		assert.Equal(t, second.ID, restaurant.RestaurantPizzas[1].ID)
		require.NotNil(t, restaurant.RestaurantPizzas[0].Pizza)
		assert.Equal(t, "Geri", restaurant.RestaurantPizzas[0].Pizza.Name)
	})

	t.Run("missing restaurant", func(t *testing.T) {
		_, err := service.GetRestaurantWithPizzas(9999)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = service.GetRestaurantByID(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete cascades to associations only of that restaurant", func(t *testing.T) {
		require.NoError(t, service.DeleteRestaurant(f.restaurants[0].ID))

		_, err := service.GetRestaurantByID(f.restaurants[0].ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = rpService.GetRestaurantPizzaByID(first.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = rpService.GetRestaurantPizzaByID(second.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		kept, err := rpService.GetRestaurantPizzaByID(other.ID)
		require.NoError(t, err)
		assert.Equal(t, f.restaurants[1].ID, kept.RestaurantID)

		count, err := rpService.CountRestaurantPizzas()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("repeated delete reports not found", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteRestaurant(f.restaurants[0].ID), ErrNotFound)
		assert.ErrorIs(t, service.DeleteRestaurant(f.restaurants[0].ID), ErrNotFound)
	})
}

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	service := NewRestaurantPizzaService(db)

	t.Run("loads both parents", func(t *testing.T) {
		rp, err := service.CreateRestaurantPizza(models.RestaurantPizza{Price: 10, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[1].ID})
		require.NoError(t, err)
		assert.NotZero(t, rp.ID)
		require.NotNil(t, rp.Pizza)
		require.NotNil(t, rp.Restaurant)
		assert.Equal(t, "Emma", rp.Pizza.Name)
		assert.Equal(t, "Sanjay's Pizza", rp.Restaurant.Name)
	})

	t.Run("entity hook rejects out of range price", func(t *testing.T) {
		before, err := service.CountRestaurantPizzas()
		require.NoError(t, err)

		for _, price := range []int{0, 31, 50, -1} {
			_, err := service.CreateRestaurantPizza(models.RestaurantPizza{Price: price, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[0].ID})
			assert.ErrorIs(t, err, models.ErrPriceOutOfRange, "price %d", price)
		}

		after, err := service.CountRestaurantPizzas()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("dangling foreign key is rolled back", func(t *testing.T) {
		before, _ := service.CountRestaurantPizzas()
		_, err := service.CreateRestaurantPizza(models.RestaurantPizza{Price: 5, PizzaID: 9999, RestaurantID: f.restaurants[0].ID})
		assert.Error(t, err)
		after, _ := service.CountRestaurantPizzas()
		assert.Equal(t, before, after)
	})

	t.Run("insert failure is rolled back", func(t *testing.T) {
		boom := errors.New("boom")
		require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail", func(tx *gorm.DB) {
			tx.AddError(boom)
		}))
		defer db.Callback().Create().Remove("test:fail")

		before, _ := service.CountRestaurantPizzas()
		_, err := service.CreateRestaurantPizza(models.RestaurantPizza{Price: 5, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[0].ID})
		assert.ErrorIs(t, err, boom)
		after, _ := service.CountRestaurantPizzas()
		assert.Equal(t, before, after)
	})
}

func TestRestaurantPizzaPriceOnUpdate(t *testing.T) {
	db := setupTestDB(t)
	f := seed(t, db)
	service := NewRestaurantPizzaService(db)

	rp, err := service.CreateRestaurantPizza(models.RestaurantPizza{Price: 10, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[0].ID})
	require.NoError(t, err)

	storedPrice := func() int {
		stored, err := service.GetRestaurantPizzaByID(rp.ID)
		require.NoError(t, err)
		return stored.Price
	}

	t.Run("column update out of range is rejected", func(t *testing.T) {
		var loaded models.RestaurantPizza
		require.NoError(t, db.First(&loaded, rp.ID).Error)

		err := db.Model(&loaded).Update("price", 50).Error
		assert.ErrorIs(t, err, models.ErrPriceOutOfRange)
		assert.Equal(t, 10, storedPrice())
	})

	t.Run("column update in range is applied", func(t *testing.T) {
		var loaded models.RestaurantPizza
		require.NoError(t, db.First(&loaded, rp.ID).Error)

		require.NoError(t, db.Model(&loaded).Update("price", 25).Error)
		assert.Equal(t, 25, storedPrice())
	})

	t.Run("save with out of range price is rejected", func(t *testing.T) {
		var loaded models.RestaurantPizza
		require.NoError(t, db.First(&loaded, rp.ID).Error)

		loaded.Price = 31
		assert.ErrorIs(t, db.Save(&loaded).Error, models.ErrPriceOutOfRange)
		assert.Equal(t, 25, storedPrice())
	})

	t.Run("update not touching price is allowed on a zero model", func(t *testing.T) {
		err := db.Model(&models.RestaurantPizza{}).Where("id = ?", rp.ID).Update("pizza_id", f.pizzas[1].ID).Error
		require.NoError(t, err)

		stored, err := service.GetRestaurantPizzaByID(rp.ID)
		require.NoError(t, err)
		assert.Equal(t, f.pizzas[1].ID, stored.PizzaID)
		assert.Equal(t, 25, stored.Price)
	})

	t.Run("store rejects writes that skip hooks", func(t *testing.T) {
		err := db.Model(&models.RestaurantPizza{ID: rp.ID}).UpdateColumn("price", 0).Error
		assert.Error(t, err)

		err = db.Exec("UPDATE restaurant_pizzas SET price = ? WHERE id = ?", 99, rp.ID).Error
		assert.Error(t, err)

		assert.Equal(t, 25, storedPrice())
	})
}

package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Price bounds for a RestaurantPizza, inclusive.
const (
	MinPrice = 1
	MaxPrice = 30
)

var (
	// ErrPriceRequired is returned when a RestaurantPizza has no price
	ErrPriceRequired = errors.New("price is required")
	// ErrPriceOutOfRange is returned when a price falls outside [MinPrice, MaxPrice]
	ErrPriceOutOfRange = fmt.Errorf("price must be between %d and %d", MinPrice, MaxPrice)
)

// PriceInRange reports whether price lies within [MinPrice, MaxPrice].
// Both the request handlers and the entity hook use it.
func PriceInRange(price float64) bool {
	return price >= MinPrice && price <= MaxPrice
}

// ValidatePrice checks a price the way the store requires it.
func ValidatePrice(price *int) error {
	if price == nil {
		return ErrPriceRequired
	}
	if !PriceInRange(float64(*price)) {
		return ErrPriceOutOfRange
	}
	return nil
}

// RestaurantPizza is the priced association between a Restaurant and a Pizza
type RestaurantPizza struct {
	ID           int         `json:"id" gorm:"primaryKey"`
	Price        int         `json:"price" gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30"`
	PizzaID      int         `json:"pizza_id" gorm:"not null;index"`
	RestaurantID int         `json:"restaurant_id" gorm:"not null;index"`
	Pizza        *Pizza      `json:"-" gorm:"foreignKey:PizzaID"`
	Restaurant   *Restaurant `json:"-" gorm:"foreignKey:RestaurantID"`
}

// NewRestaurantPizza builds an association, rejecting a missing or out of range price.
func NewRestaurantPizza(price *int, pizzaID, restaurantID int) (RestaurantPizza, error) {
	if err := ValidatePrice(price); err != nil {
		return RestaurantPizza{}, err
	}
	return RestaurantPizza{
		Price:        *price,
		PizzaID:      pizzaID,
		RestaurantID: restaurantID,
	}, nil
}

// BeforeCreate rejects inserts carrying an out of range price.
func (rp *RestaurantPizza) BeforeCreate(tx *gorm.DB) error {
	return ValidatePrice(&rp.Price)
}

// BeforeUpdate validates the price being written, if any. The stored row is
// not consulted; updates that leave price alone always pass. The column CHECK
// covers raw SQL and UpdateColumn, which skip hooks.
func (rp *RestaurantPizza) BeforeUpdate(tx *gorm.DB) error {
	switch dest := tx.Statement.Dest.(type) {
	case map[string]interface{}:
		value, ok := dest["price"]
		if !ok {
			value, ok = dest["Price"]
		}
		if !ok {
			return nil
		}
		return validatePriceValue(value)
	case *RestaurantPizza:
		// Save passes the model itself as Dest; Updates skips a zero price
		if dest == rp || (dest.Price != 0 && tx.Statement.Changed("Price")) {
			return ValidatePrice(&dest.Price)
		}
	}
	return nil
}

// validatePriceValue checks a loosely typed price from an update map.
// Non-numeric values such as gorm.Expr are left to the column CHECK.
func validatePriceValue(value interface{}) error {
	var price float64
	switch v := value.(type) {
	case nil:
		return ErrPriceRequired
	case int:
		price = float64(v)
	case int32:
		price = float64(v)
	case int64:
		price = float64(v)
	case uint:
		price = float64(v)
	case uint32:
		price = float64(v)
	case uint64:
		price = float64(v)
	case float32:
		price = float64(v)
	case float64:
		price = v
	default:
		return nil
	}
	if !PriceInRange(price) {
		return ErrPriceOutOfRange
	}
	return nil
}

// RestaurantPizzaResponse is the transport form of a RestaurantPizza
type RestaurantPizzaResponse struct {
	ID           int                 `json:"id"`
	PizzaID      int                 `json:"pizza_id"`
	RestaurantID int                 `json:"restaurant_id"`
	Price        int                 `json:"price"`
	Pizza        *PizzaResponse      `json:"pizza,omitempty"`
	Restaurant   *RestaurantResponse `json:"restaurant,omitempty"`
}

// Serialize returns the association with optional nested parents.
// A nested key is omitted when the parent was not loaded.
func (rp *RestaurantPizza) Serialize(includeNestedPizza, includeNestedRestaurant bool) RestaurantPizzaResponse {
	resp := RestaurantPizzaResponse{
		ID:           rp.ID,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Price:        rp.Price,
	}
	if includeNestedPizza && rp.Pizza != nil {
		pizza := rp.Pizza.Serialize()
		resp.Pizza = &pizza
	}
	if includeNestedRestaurant && rp.Restaurant != nil {
		// one level only; the nested restaurant never lists associations
		restaurant := rp.Restaurant.Serialize(false)
		resp.Restaurant = &restaurant
	}
	return resp
}

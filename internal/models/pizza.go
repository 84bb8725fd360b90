package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID               int               `json:"id" gorm:"primaryKey"`
	Name             string            `json:"name" gorm:"not null"`
	Ingredients      string            `json:"ingredients" gorm:"not null"`
	RestaurantPizzas []RestaurantPizza `json:"-" gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
}

// PizzaResponse is the transport form of a Pizza
type PizzaResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// Serialize returns the pizza without its associations.
func (p *Pizza) Serialize() PizzaResponse {
	return PizzaResponse{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}

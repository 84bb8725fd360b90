package models

// Restaurant represents a restaurant and the pizzas it sells.
// Deleting a restaurant removes its RestaurantPizzas.
type Restaurant struct {
	ID               int               `json:"id" gorm:"primaryKey"`
	Name             string            `json:"name" gorm:"not null"`
	Address          string            `json:"address" gorm:"not null"`
	RestaurantPizzas []RestaurantPizza `json:"-" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// RestaurantResponse is the transport form of a Restaurant.
// RestaurantPizzas is nil unless associations were requested.
type RestaurantResponse struct {
	ID               int                        `json:"id"`
	Name             string                     `json:"name"`
	Address          string                     `json:"address"`
	RestaurantPizzas *[]RestaurantPizzaResponse `json:"restaurant_pizzas,omitempty"`
}

// Serialize returns the restaurant, optionally with its associations.
// Each association carries its pizza but never the restaurant again.
func (r *Restaurant) Serialize(includeAssociations bool) RestaurantResponse {
	resp := RestaurantResponse{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
	if includeAssociations {
		items := make([]RestaurantPizzaResponse, 0, len(r.RestaurantPizzas))
		for i := range r.RestaurantPizzas {
			items = append(items, r.RestaurantPizzas[i].Serialize(true, false))
		}
		resp.RestaurantPizzas = &items
	}
	return resp
}

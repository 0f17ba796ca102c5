package models

// Restaurant represents a row of the restaurants table
type Restaurant struct {
	ID      int `gorm:"primaryKey"`
	Name    string
	Address string

	// Deleting a restaurant removes its restaurant pizzas as well
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Price bounds for a pizza sold at a restaurant, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza joins a restaurant and a pizza with the price the restaurant charges
type RestaurantPizza struct {
	ID           int `gorm:"primaryKey"`
	RestaurantID int `gorm:"not null"`
	PizzaID      int `gorm:"not null"`
	Price        int `gorm:"not null"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Pizza      *Pizza      `gorm:"foreignKey:PizzaID"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// NewRestaurantPizza builds a RestaurantPizza, rejecting prices outside [MinPrice, MaxPrice]
func NewRestaurantPizza(restaurantID, pizzaID, price int) (*RestaurantPizza, error) {
	rp := &RestaurantPizza{
		RestaurantID: restaurantID,
		PizzaID:      pizzaID,
		Price:        price,
	}
	if err := rp.Validate(); err != nil {
		return nil, err
	}
	return rp, nil
}

// Validate checks the price invariant
func (rp *RestaurantPizza) Validate() error {
	if !ValidPrice(rp.Price) {
		return &ValidationError{
			Field:   "price",
			Message: fmt.Sprintf("Price must be between %d and %d", MinPrice, MaxPrice),
		}
	}
	return nil
}

// BeforeSave is a gorm hook, rows with an invalid price never reach the store
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return rp.Validate()
}

// ValidPrice reports whether price lies within the accepted range
func ValidPrice(price int) bool {
	return price >= MinPrice && price <= MaxPrice
}

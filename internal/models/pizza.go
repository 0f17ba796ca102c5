package models

// Pizza represents a row of the pizzas table
type Pizza struct {
	ID          int    `gorm:"primaryKey"`
	Name        string
	Ingredients string // free text, e.g. "Dough, Tomato Sauce, Cheese"

	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

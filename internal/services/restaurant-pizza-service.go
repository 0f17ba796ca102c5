package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService provides methods to interact with the restaurant pizza database
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and stores a new restaurant pizza.
	// The returned value has its Restaurant and Pizza loaded.
	CreateRestaurantPizza(ctx context.Context, restaurantID, pizzaID, price int) (models.RestaurantPizza, error)
	// GetRestaurantPizzaByID retrieves a restaurant pizza with its Restaurant and Pizza loaded
	GetRestaurantPizzaByID(ctx context.Context, id int) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, restaurantID, pizzaID, price int) (models.RestaurantPizza, error) {
	restaurantPizza, err := models.NewRestaurantPizza(restaurantID, pizzaID, price)
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(restaurantPizza).Error; err != nil {
			return err
		}
		return tx.Preload("Restaurant").Preload("Pizza").First(restaurantPizza, restaurantPizza.ID).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return *restaurantPizza, nil
}

func (s *restaurantPizzaService) GetRestaurantPizzaByID(ctx context.Context, id int) (models.RestaurantPizza, error) {
	var restaurantPizza models.RestaurantPizza
	err := s.db.WithContext(ctx).Preload("Restaurant").Preload("Pizza").First(&restaurantPizza, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RestaurantPizza{}, models.ErrRestaurantPizzaNotFound
		}
		return models.RestaurantPizza{}, err
	}
	return restaurantPizza, nil
}

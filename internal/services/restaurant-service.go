package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their associations
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant by its ID without its associations
	GetRestaurantByID(ctx context.Context, id int) (models.Restaurant, error)
	// GetRestaurantWithPizzas retrieves a restaurant along with its restaurant pizzas and their pizza
	GetRestaurantWithPizzas(ctx context.Context, id int) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and every restaurant pizza referencing it
	DeleteRestaurant(ctx context.Context, id int) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return models.Restaurant{}, translateRestaurantErr(err)
	}
	return restaurant, nil
}

func (s *restaurantService) GetRestaurantWithPizzas(ctx context.Context, id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB {
			return db.Order("restaurant_pizzas.id")
		}).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, translateRestaurantErr(err)
	}
	return restaurant, nil
}

// DeleteRestaurant removes the restaurant pizzas first, the schema cascade is not relied upon
func (s *restaurantService) DeleteRestaurant(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Select("id").First(&restaurant, id).Error; err != nil {
			return translateRestaurantErr(err)
		}
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return err
		}
		return tx.Delete(&restaurant).Error
	})
}

func translateRestaurantErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrRestaurantNotFound
	}
	return err
}

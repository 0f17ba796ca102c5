package database

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db, "sqlite"))
	return db
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Migrate(db, "sqlite"))

	for _, table := range []string{"restaurants", "pizzas", "restaurant_pizzas"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestSeedIfEmpty(t *testing.T) {
	db := setupTestDB(t)

	seeded, err := SeedIfEmpty(db)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = SeedIfEmpty(db)
	require.NoError(t, err)
	assert.False(t, seeded)

	var restaurants, pizzas, restaurantPizzas int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&restaurantPizzas)
	assert.EqualValues(t, 3, restaurants)
	assert.EqualValues(t, 3, pizzas)
	assert.EqualValues(t, 3, restaurantPizzas)
}

func TestReset(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Seed(db))

	require.NoError(t, Reset(db))

	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.RestaurantPizza{}).Count(&count)
	assert.Zero(t, count)
}

func TestSchemaCascadesRestaurantDelete(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Seed(db))

	var restaurant models.Restaurant
	require.NoError(t, db.Where("name = ?", "Sanjay's Pizza").First(&restaurant).Error)

	// bypass the application and rely on ON DELETE CASCADE alone
	require.NoError(t, db.Exec("DELETE FROM restaurants WHERE id = ?", restaurant.ID).Error)

	var remaining int64
	db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&remaining)
	assert.Zero(t, remaining)
}

func TestSchemaCascadesPizzaDelete(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Seed(db))

	var pizza models.Pizza
	require.NoError(t, db.Where("name = ?", "Geri").First(&pizza).Error)

	require.NoError(t, db.Exec("DELETE FROM pizzas WHERE id = ?", pizza.ID).Error)

	var remaining, total int64
	db.Model(&models.RestaurantPizza{}).Where("pizza_id = ?", pizza.ID).Count(&remaining)
	db.Model(&models.RestaurantPizza{}).Count(&total)
	assert.Zero(t, remaining)
	assert.EqualValues(t, 2, total)
}

func TestSchemaRejectsDanglingReferences(t *testing.T) {
	db := setupTestDB(t)

	err := db.Exec("INSERT INTO restaurant_pizzas (restaurant_id, pizza_id, price) VALUES (?, ?, ?)", 41, 42, 10).Error
	assert.Error(t, err)
}

func TestSchemaRejectsOutOfRangePrice(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Seed(db))

	err := db.Exec("INSERT INTO restaurant_pizzas (restaurant_id, pizza_id, price) VALUES (1, 1, 31)").Error
	assert.Error(t, err)
}

package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestAPI returns a router over a freshly seeded in-memory database:
//
//	restaurants: 1 Karen's Pizza Shack, 2 Sanjay's Pizza, 3 Kiki's Pizza
//	pizzas:      1 Emma, 2 Geri, 3 Melanie
//	restaurant_pizzas: 1 (1,1,$1), 2 (2,2,$4), 3 (2,3,$5)
func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db, "sqlite"))
	require.NoError(t, database.Seed(db))

	return NewRouter(db, []string{"*"}), db
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := perform(router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "<h1>Code challenge</h1>", w.Body.String())
}

func TestHealth(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := perform(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestGetRestaurants(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := perform(router, http.MethodGet, "/restaurants", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id": 1, "name": "Karen's Pizza Shack", "address": "address1"},
		{"id": 2, "name": "Sanjay's Pizza", "address": "address2"},
		{"id": 3, "name": "Kiki's Pizza", "address": "address3"}
	]`, w.Body.String())
}

func TestGetRestaurantByID(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := perform(router, http.MethodGet, "/restaurants/2", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 2,
		"name": "Sanjay's Pizza",
		"address": "address2",
		"restaurant_pizzas": [
			{
				"id": 2, "price": 4, "restaurant_id": 2, "pizza_id": 2,
				"pizza": {"id": 2, "name": "Geri", "ingredients": "Dough, Tomato Sauce, Cheese, Pepperoni"}
			},
			{
				"id": 3, "price": 5, "restaurant_id": 2, "pizza_id": 3,
				"pizza": {"id": 3, "name": "Melanie", "ingredients": "Dough, Sauce, Ricotta, Red peppers, Mustard"}
			}
		]
	}`, w.Body.String())
}

func TestGetRestaurantWithoutPizzas(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := perform(router, http.MethodGet, "/restaurants/3", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 3, "name": "Kiki's Pizza", "address": "address3", "restaurant_pizzas": []}`, w.Body.String())
}

func TestGetRestaurantNotFound(t *testing.T) {
	router, _ := setupTestAPI(t)

	for _, path := range []string{"/restaurants/999999", "/restaurants/not-a-number"} {
		w := perform(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String(), path)
	}
}

func TestRepeatedGetsAreIdentical(t *testing.T) {
	router, _ := setupTestAPI(t)

	for _, path := range []string{"/restaurants", "/restaurants/1", "/pizzas"} {
		first := perform(router, http.MethodGet, path, "")
		second := perform(router, http.MethodGet, path, "")
		assert.Equal(t, first.Body.String(), second.Body.String(), path)
	}
}

func TestDeleteRestaurant(t *testing.T) {
	router, db := setupTestAPI(t)

	w := perform(router, http.MethodDelete, "/restaurants/2", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = perform(router, http.MethodGet, "/restaurants/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())

	var remaining int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", 2).Count(&remaining).Error)
	assert.Zero(t, remaining)

	w = perform(router, http.MethodGet, "/restaurants", "")
	assert.JSONEq(t, `[
		{"id": 1, "name": "Karen's Pizza Shack", "address": "address1"},
		{"id": 3, "name": "Kiki's Pizza", "address": "address3"}
	]`, w.Body.String())
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	router, db := setupTestAPI(t)

	w := perform(router, http.MethodDelete, "/restaurants/999999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())

	var restaurants, restaurantPizzas int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.RestaurantPizza{}).Count(&restaurantPizzas)
	assert.EqualValues(t, 3, restaurants)
	assert.EqualValues(t, 3, restaurantPizzas)
}

func TestGetPizzas(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := perform(router, http.MethodGet, "/pizzas", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id": 1, "name": "Emma", "ingredients": "Dough, Tomato Sauce, Cheese"},
		{"id": 2, "name": "Geri", "ingredients": "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{"id": 3, "name": "Melanie", "ingredients": "Dough, Sauce, Ricotta, Red peppers, Mustard"}
	]`, w.Body.String())
}

func TestCreateRestaurantPizza(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := perform(router, http.MethodPost, "/restaurant_pizzas", `{"price": 15, "pizza_id": 1, "restaurant_id": 3}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"id": 4,
		"price": 15,
		"pizza_id": 1,
		"restaurant_id": 3,
		"pizza": {"id": 1, "name": "Emma", "ingredients": "Dough, Tomato Sauce, Cheese"},
		"restaurant": {"id": 3, "name": "Kiki's Pizza", "address": "address3"}
	}`, w.Body.String())

	w = perform(router, http.MethodGet, "/restaurants/3", "")
	assert.Contains(t, w.Body.String(), `"price":15`)
}

func TestCreateRestaurantPizzaPriceBoundaries(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		status int
	}{
		{name: "price 1 is accepted", body: `{"price": 1, "pizza_id": 1, "restaurant_id": 1}`, status: http.StatusCreated},
		{name: "price 30 is accepted", body: `{"price": 30, "pizza_id": 1, "restaurant_id": 1}`, status: http.StatusCreated},
		{name: "price 0 is rejected", body: `{"price": 0, "pizza_id": 1, "restaurant_id": 1}`, status: http.StatusBadRequest},
		{name: "price 31 is rejected", body: `{"price": 31, "pizza_id": 1, "restaurant_id": 1}`, status: http.StatusBadRequest},
		{name: "non-integer price is rejected", body: `{"price": "15", "pizza_id": 1, "restaurant_id": 1}`, status: http.StatusBadRequest},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			router, db := setupTestAPI(t)

			w := perform(router, http.MethodPost, "/restaurant_pizzas", tt.body)

			assert.Equal(t, tt.status, w.Code)
			var count int64
			db.Model(&models.RestaurantPizza{}).Count(&count)
			if tt.status == http.StatusBadRequest {
				assert.JSONEq(t, `{"errors": ["validation errors"]}`, w.Body.String())
				assert.EqualValues(t, 3, count)
			} else {
				assert.EqualValues(t, 4, count)
			}
		})
	}
}

func TestCreateRestaurantPizzaMissingData(t *testing.T) {
	router, _ := setupTestAPI(t)

	for _, body := range []string{
		`{"pizza_id": 1, "restaurant_id": 1}`,
		`{"price": 10, "restaurant_id": 1}`,
		`{"price": 10, "pizza_id": 1}`,
		`{"price": null, "pizza_id": 1, "restaurant_id": 1}`,
		`{}`,
		`{"price": "abc"}`,
		`[]`,
		`"x"`,
		`null`,
		`{"price": 10,`,
		``,
	} {
		w := perform(router, http.MethodPost, "/restaurant_pizzas", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"errors": ["Missing data for restaurant_pizza creation"]}`, w.Body.String(), body)
	}
}

func TestCreateRestaurantPizzaUnknownReferences(t *testing.T) {
	router, _ := setupTestAPI(t)

	for _, body := range []string{
		`{"price": 10, "pizza_id": 999, "restaurant_id": 1}`,
		`{"price": 10, "pizza_id": 1, "restaurant_id": 999}`,
		// references are checked before the price
		`{"price": 99, "pizza_id": 999, "restaurant_id": 999}`,
		`{"price": "15", "pizza_id": 999, "restaurant_id": 1}`,
		// an id that is not an integer matches no row
		`{"price": 10, "pizza_id": "one", "restaurant_id": 1}`,
		`{"price": 10, "pizza_id": 1, "restaurant_id": 1.5}`,
	} {
		w := perform(router, http.MethodPost, "/restaurant_pizzas", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"errors": ["Pizza or Restaurant not found"]}`, w.Body.String(), body)
	}
}

func TestGetRestaurantPizzaByID(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := perform(router, http.MethodGet, "/restaurant_pizzas/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 1, "price": 1, "restaurant_id": 1, "pizza_id": 1,
		"restaurant": {"name": "Karen's Pizza Shack"},
		"pizza": {"name": "Emma", "ingredients": "Dough, Tomato Sauce, Cheese"}
	}`, w.Body.String())

	w = perform(router, http.MethodGet, "/restaurant_pizzas/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "RestaurantPizza not found"}`, w.Body.String())
}

func TestSwaggerDocs(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := perform(router, http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/restaurant_pizzas")
}

func TestResponsesCarryRequestID(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := perform(router, http.MethodGet, "/pizzas", "")

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

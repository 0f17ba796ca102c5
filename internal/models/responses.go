package models

// RestaurantSummary is a restaurant without its associations
type RestaurantSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is a pizza without its associations
type PizzaSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantDetail is a restaurant with the pizzas it sells
type RestaurantDetail struct {
	ID               int                    `json:"id"`
	Name             string                 `json:"name"`
	Address          string                 `json:"address"`
	RestaurantPizzas []RestaurantPizzaEntry `json:"restaurant_pizzas"`
}

// RestaurantPizzaEntry is a restaurant pizza nested under its restaurant.
// It carries no restaurant back-reference.
type RestaurantPizzaEntry struct {
	ID           int          `json:"id"`
	Price        int          `json:"price"`
	RestaurantID int          `json:"restaurant_id"`
	PizzaID      int          `json:"pizza_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// RestaurantPizzaCreated is the body returned after a successful creation
type RestaurantPizzaCreated struct {
	ID           int               `json:"id"`
	Price        int               `json:"price"`
	PizzaID      int               `json:"pizza_id"`
	RestaurantID int               `json:"restaurant_id"`
	Pizza        PizzaSummary      `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

// RestaurantPizzaView is the standalone projection of a restaurant pizza
type RestaurantPizzaView struct {
	ID           int                 `json:"id"`
	Price        int                 `json:"price"`
	RestaurantID int                 `json:"restaurant_id"`
	PizzaID      int                 `json:"pizza_id"`
	Restaurant   RestaurantNameView  `json:"restaurant"`
	Pizza        PizzaIngredientView `json:"pizza"`
}

type RestaurantNameView struct {
	Name string `json:"name"`
}

type PizzaIngredientView struct {
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

func NewRestaurantSummary(r Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

// NewRestaurantSummaries never returns nil so an empty table encodes as []
func NewRestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	summaries := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		summaries = append(summaries, NewRestaurantSummary(r))
	}
	return summaries
}

func NewPizzaSummary(p Pizza) PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

func NewPizzaSummaries(pizzas []Pizza) []PizzaSummary {
	summaries := make([]PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		summaries = append(summaries, NewPizzaSummary(p))
	}
	return summaries
}

// NewRestaurantDetail expects RestaurantPizzas and their Pizza to be loaded
func NewRestaurantDetail(r Restaurant) RestaurantDetail {
	entries := make([]RestaurantPizzaEntry, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		entry := RestaurantPizzaEntry{
			ID:           rp.ID,
			Price:        rp.Price,
			RestaurantID: rp.RestaurantID,
			PizzaID:      rp.PizzaID,
		}
		if rp.Pizza != nil {
			entry.Pizza = NewPizzaSummary(*rp.Pizza)
		}
		entries = append(entries, entry)
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: entries,
	}
}

func NewRestaurantPizzaCreated(rp RestaurantPizza) RestaurantPizzaCreated {
	created := RestaurantPizzaCreated{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
	if rp.Pizza != nil {
		created.Pizza = NewPizzaSummary(*rp.Pizza)
	}
	if rp.Restaurant != nil {
		created.Restaurant = NewRestaurantSummary(*rp.Restaurant)
	}
	return created
}

func NewRestaurantPizzaView(rp RestaurantPizza) RestaurantPizzaView {
	view := RestaurantPizzaView{
		ID:           rp.ID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
		PizzaID:      rp.PizzaID,
	}
	if rp.Restaurant != nil {
		view.Restaurant.Name = rp.Restaurant.Name
	}
	if rp.Pizza != nil {
		view.Pizza = PizzaIngredientView{Name: rp.Pizza.Name, Ingredients: rp.Pizza.Ingredients}
	}
	return view
}

package item

// Item is a single catalog or basket entry. The same shape travels over the
// REST API and the notification channel.
type Item struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Ingredients []string `json:"ingredients"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
}

// Collection selects which item set an operation targets.
type Collection string

const (
	CollectionMenu   Collection = "menu"
	CollectionBasket Collection = "basket"
)

// Categories is the fixed category set used by filters and the item generator.
// Free-text categories are still accepted on writes.
var Categories = []string{"Breakfast", "Dinner", "Dessert"}

// Patch is a partial item update. Nil fields are left untouched; identity is
// never patchable.
type Patch struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	Quantity    *int      `json:"quantity"`
	Ingredients *[]string `json:"ingredients"`
	Image       *string   `json:"image"`
	Rating      *float64  `json:"rating"`
	Reviews     *int      `json:"reviews"`
}

func (p Patch) apply(it Item) Item {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.Ingredients != nil {
		it.Ingredients = *p.Ingredients
	}
	if p.Image != nil {
		it.Image = *p.Image
	}
	if p.Rating != nil {
		it.Rating = *p.Rating
	}
	if p.Reviews != nil {
		it.Reviews = *p.Reviews
	}
	return it
}

package realtime

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"tavolo/internal/item"
)

// Generator synthesizes random catalog items for the notification channel.
// Price is uniform in [5,50), rating in [1,5), reviews an integer in [0,50).
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) Next() item.Item {
	category := item.Categories[g.rng.Intn(len(item.Categories))]
	return item.Item{
		ID:          time.Now().UnixMilli(),
		Name:        fmt.Sprintf("Random %s Item", category),
		Category:    category,
		Price:       round(g.rng.Float64()*45+5, 2),
		Quantity:    1,
		Ingredients: []string{"Ingredient 1", "Ingredient 2"},
		Image:       "https://loremflickr.com/320/240/food",
		Rating:      round(g.rng.Float64()*4+1, 1),
		Reviews:     g.rng.Intn(50),
	}
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

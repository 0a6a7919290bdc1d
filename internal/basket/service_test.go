package basket

import (
	"math"
	"testing"

	"tavolo/internal/item"
)

func seedBasket(t *testing.T, store *item.Store, quantity int, rating float64, reviews int) int64 {
	t.Helper()

	name := "Beef Steak"
	category := "Dinner"
	price := 29.99
	ingredients := []string{"Ribeye Steak", "Garlic", "Butter"}
	image := "https://example.com/steak.jpg"
	items, err := store.Create(item.CollectionBasket, item.Patch{
		Name:        &name,
		Category:    &category,
		Price:       &price,
		Quantity:    &quantity,
		Ingredients: &ingredients,
		Image:       &image,
		Rating:      &rating,
		Reviews:     &reviews,
	})
	if err != nil {
		t.Fatalf("seed basket: %v", err)
	}
	return items[len(items)-1].ID
}

func TestAddToBasket_ForcesQuantityToOne(t *testing.T) {
	store := item.NewStore()
	svc := NewService(store)

	name := "Tiramisu"
	category := "Dessert"
	price := 7.99
	quantity := 9
	ingredients := []string{"Mascarpone", "Coffee"}
	image := "https://example.com/t.jpg"
	rating := 4.4
	reviews := 142

	items, err := svc.AddToBasket(item.Patch{
		Name: &name, Category: &category, Price: &price, Quantity: &quantity,
		Ingredients: &ingredients, Image: &image, Rating: &rating, Reviews: &reviews,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Quantity != 1 {
		t.Errorf("expected quantity forced to 1, got %d", items[0].Quantity)
	}
}

func TestQuantityMutations(t *testing.T) {
	store := item.NewStore()
	svc := NewService(store)
	id := seedBasket(t, store, 1, 4.5, 10)

	items, err := svc.IncreaseQuantity(id)
	if err != nil || items[0].Quantity != 2 {
		t.Fatalf("increase failed: err=%v items=%+v", err, items)
	}

	items, err = svc.DecreaseQuantity(id)
	if err != nil || items[0].Quantity != 1 {
		t.Fatalf("decrease failed: err=%v items=%+v", err, items)
	}
}

func TestDecreaseQuantity_BelowOneRemovesItem(t *testing.T) {
	store := item.NewStore()
	svc := NewService(store)
	id := seedBasket(t, store, 1, 4.5, 10)

	items, err := svc.DecreaseQuantity(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected item removed instead of quantity 0, got %+v", items)
	}
}

func TestEditIngredients_RequiresAtLeastTwo(t *testing.T) {
	store := item.NewStore()
	svc := NewService(store)
	id := seedBasket(t, store, 1, 4.5, 10)

	_, err := svc.EditIngredients(id, []string{"Garlic"})
	verr, ok := err.(*item.ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields["ingredients"] == "" {
		t.Errorf("expected ingredient field detail, got %v", verr.Fields)
	}

	items, err := svc.EditIngredients(id, []string{"Garlic", "Thyme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := items[0].Ingredients; len(got) != 2 || got[1] != "Thyme" {
		t.Errorf("ingredients not replaced: %v", got)
	}
}

func TestAddReview_MergesRunningMean(t *testing.T) {
	store := item.NewStore()
	svc := NewService(store)
	id := seedBasket(t, store, 1, 4.5, 10)

	items, err := svc.AddReview(id, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := (4.5*10 + 5) / 11
	if math.Abs(items[0].Rating-want) > 1e-9 {
		t.Errorf("expected merged rating %.6f, got %.6f", want, items[0].Rating)
	}
	if items[0].Reviews != 11 {
		t.Errorf("expected 11 reviews, got %d", items[0].Reviews)
	}
}

func TestAddReview_RejectsOutOfRangeRating(t *testing.T) {
	store := item.NewStore()
	svc := NewService(store)
	id := seedBasket(t, store, 1, 4.5, 10)

	if _, err := svc.AddReview(id, 6); err == nil {
		t.Fatal("expected validation error for rating 6")
	}

	it, _ := store.Get(item.CollectionBasket, id)
	if it.Reviews != 10 {
		t.Errorf("rejected review mutated state: %+v", it)
	}
}

func TestMutations_AdoptStoreSnapshot(t *testing.T) {
	store := item.NewStore()
	svc := NewService(store)
	id := seedBasket(t, store, 1, 4.5, 10)
	svc.Refresh(item.Query{})

	svc.IncreaseQuantity(id)
	snap := svc.Snapshot()
	if len(snap) != 1 || snap[0].Quantity != 2 {
		t.Fatalf("snapshot not replaced with store result: %+v", snap)
	}

	svc.Remove(id)
	if got := svc.Snapshot(); len(got) != 0 {
		t.Fatalf("snapshot should be empty after removal, got %+v", got)
	}
}

func TestTotal(t *testing.T) {
	store := item.NewStore()
	svc := NewService(store)
	id := seedBasket(t, store, 1, 4.5, 10) // 29.99
	svc.IncreaseQuantity(id)               // quantity 2
	svc.Refresh(item.Query{})

	want := 29.99 * 2
	if got := svc.Total(); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected total %.2f, got %.2f", want, got)
	}
}

package basket

import (
	"sync"

	"tavolo/internal/item"
)

// MinIngredients is the smallest custom ingredient list a user may save.
// Enforced here, at the edit boundary, not by the store schema.
const MinIngredients = 2

// Service orchestrates basket mutations against the item store and keeps the
// last authoritative snapshot the store returned. It never merges
// optimistically: after every mutation the store's own collection replaces
// the local copy.
type Service struct {
	store *item.Store

	mu       sync.Mutex
	snapshot []item.Item
}

func NewService(store *item.Store) *Service {
	return &Service{store: store}
}

// Snapshot returns the last adopted basket collection.
func (s *Service) Snapshot() []item.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]item.Item, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Refresh re-reads the basket through the shared pipeline and, for the
// unfiltered query, adopts the result as the current snapshot.
func (s *Service) Refresh(q item.Query) []item.Item {
	items := s.store.List(item.CollectionBasket, q)
	if q == (item.Query{}) {
		s.adopt(items)
	}
	return items
}

// Total is the basket total: Σ price × quantity over the current snapshot.
func (s *Service) Total() float64 {
	var total float64
	for _, it := range s.Snapshot() {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// AddToBasket inserts an item through the store's create path. Quantity is
// forced to 1; the basket owns quantities from then on.
func (s *Service) AddToBasket(p item.Patch) ([]item.Item, error) {
	one := 1
	p.Quantity = &one

	items, err := s.store.Create(item.CollectionBasket, p)
	if err != nil {
		return nil, err
	}
	s.adopt(items)
	return items, nil
}

// IncreaseQuantity bumps the item's quantity by one.
func (s *Service) IncreaseQuantity(id int64) ([]item.Item, error) {
	it, ok := s.store.Get(item.CollectionBasket, id)
	if !ok {
		return nil, item.ErrNotFound
	}

	q := it.Quantity + 1
	items, err := s.store.Update(item.CollectionBasket, id, item.Patch{Quantity: &q})
	if err != nil {
		return nil, err
	}
	s.adopt(items)
	return items, nil
}

// DecreaseQuantity lowers the quantity by one; dropping below 1 removes the
// item instead of storing an invalid quantity.
func (s *Service) DecreaseQuantity(id int64) ([]item.Item, error) {
	it, ok := s.store.Get(item.CollectionBasket, id)
	if !ok {
		return nil, item.ErrNotFound
	}

	var items []item.Item
	var err error
	if it.Quantity > 1 {
		q := it.Quantity - 1
		items, err = s.store.Update(item.CollectionBasket, id, item.Patch{Quantity: &q})
	} else {
		items, err = s.store.Delete(item.CollectionBasket, id)
	}
	if err != nil {
		return nil, err
	}
	s.adopt(items)
	return items, nil
}

// EditIngredients replaces the item's ingredient list. Lists shorter than
// MinIngredients are rejected before the store is touched.
func (s *Service) EditIngredients(id int64, ingredients []string) ([]item.Item, error) {
	if len(ingredients) < MinIngredients {
		return nil, &item.ValidationError{Fields: map[string]string{
			"ingredients": "at least 2 ingredients are required",
		}}
	}

	items, err := s.store.Update(item.CollectionBasket, id, item.Patch{Ingredients: &ingredients})
	if err != nil {
		return nil, err
	}
	s.adopt(items)
	return items, nil
}

// AddReview folds a new rating into the running mean before the update:
// rating' = (rating*reviews + new) / (reviews+1).
func (s *Service) AddReview(id int64, rating float64) ([]item.Item, error) {
	if rating < 1 || rating > 5 {
		return nil, &item.ValidationError{Fields: map[string]string{
			"rating": "must be between 1 and 5",
		}}
	}

	it, ok := s.store.Get(item.CollectionBasket, id)
	if !ok {
		return nil, item.ErrNotFound
	}

	merged := (it.Rating*float64(it.Reviews) + rating) / float64(it.Reviews+1)
	reviews := it.Reviews + 1
	items, err := s.store.Update(item.CollectionBasket, id, item.Patch{
		Rating:  &merged,
		Reviews: &reviews,
	})
	if err != nil {
		return nil, err
	}
	s.adopt(items)
	return items, nil
}

// Remove deletes the item from the basket.
func (s *Service) Remove(id int64) ([]item.Item, error) {
	items, err := s.store.Delete(item.CollectionBasket, id)
	if err != nil {
		return nil, err
	}
	s.adopt(items)
	return items, nil
}

func (s *Service) adopt(items []item.Item) {
	s.mu.Lock()
	s.snapshot = items
	s.mu.Unlock()
}

package order

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryOrderRepository keeps orders for the process lifetime. It backs
// local runs without a database and the order tests.
type InMemoryOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*Order
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]*Order),
	}
}

func (r *InMemoryOrderRepository) Save(order *Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.mu.Lock()
	r.orders[order.ID] = order
	r.mu.Unlock()
	return nil
}

func (r *InMemoryOrderRepository) ListByUser(userID string) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryOrderRepository) FindByID(id string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *o
	return &copied, nil
}

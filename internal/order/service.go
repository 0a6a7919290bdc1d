package order

import (
	"errors"
	"time"

	"tavolo/internal/basket"
	"tavolo/internal/item"
)

var (
	ErrEmptyBasket = errors.New("basket is empty")
	ErrNotFound    = errors.New("order not found")
)

// Service turns the current basket into persisted orders and re-materializes
// past orders back into the basket.
type Service struct {
	basket *basket.Service
	repo   OrderRepository
}

func NewService(b *basket.Service, repo OrderRepository) *Service {
	return &Service{basket: b, repo: repo}
}

// Checkout snapshots the basket into an order, saves it and empties the
// basket. An empty basket is a client error, not a zero-total order.
func (s *Service) Checkout(userID string) (*Order, error) {
	items := s.basket.Refresh(item.Query{})
	if len(items) == 0 {
		return nil, ErrEmptyBasket
	}

	o := &Order{
		UserID:    userID,
		Items:     make([]Line, 0, len(items)),
		CreatedAt: time.Now().UTC(),
	}
	for _, it := range items {
		o.Items = append(o.Items, Line{
			Name:        it.Name,
			Category:    it.Category,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Ingredients: it.Ingredients,
			Image:       it.Image,
			Rating:      it.Rating,
			Reviews:     it.Reviews,
		})
		o.Total += it.Price * float64(it.Quantity)
	}

	if err := s.repo.Save(o); err != nil {
		return nil, err
	}

	for _, it := range items {
		if _, err := s.basket.Remove(it.ID); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// History lists the user's past orders, newest first.
func (s *Service) History(userID string) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

// Repeat adds every line of a past order back into the basket. Re-added
// items go through the normal create path, so they get fresh IDs and start
// at quantity 1. Orders belonging to another user are reported as missing,
// not forbidden.
func (s *Service) Repeat(userID, orderID string) ([]item.Item, error) {
	o, err := s.repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrNotFound
	}

	var items []item.Item
	for _, line := range o.Items {
		items, err = s.basket.AddToBasket(item.Patch{
			Name:        &line.Name,
			Category:    &line.Category,
			Price:       &line.Price,
			Quantity:    &line.Quantity,
			Ingredients: &line.Ingredients,
			Image:       &line.Image,
			Rating:      &line.Rating,
			Reviews:     &line.Reviews,
		})
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

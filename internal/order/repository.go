package order

type OrderRepository interface {
	Save(order *Order) error
	ListByUser(userID string) ([]Order, error)
	FindByID(id string) (*Order, error)
}

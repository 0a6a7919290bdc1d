package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Save(order *Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (id, user_id, total, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(ctx, query, order.ID, order.UserID, order.Total, order.CreatedAt); err != nil {
		return err
	}

	lineQuery := `
		INSERT INTO order_items (order_id, name, category, price, quantity, ingredients, image, rating, reviews)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, line := range order.Items {
		if _, err := tx.Exec(ctx, lineQuery,
			order.ID, line.Name, line.Category, line.Price, line.Quantity,
			line.Ingredients, line.Image, line.Rating, line.Reviews,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresOrderRepository) ListByUser(userID string) ([]Order, error) {
	ctx := context.Background()
	query := `
		SELECT id, user_id, total, created_at
		FROM orders WHERE user_id=$1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresOrderRepository) FindByID(id string) (*Order, error) {
	ctx := context.Background()
	query := `
		SELECT id, user_id, total, created_at
		FROM orders WHERE id=$1
	`
	row := r.db.QueryRow(ctx, query, id)

	var o Order
	if err := row.Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt); err != nil {
		return nil, ErrNotFound
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PostgresOrderRepository) loadItems(ctx context.Context, orderID string) ([]Line, error) {
	query := `
		SELECT name, category, price, quantity, ingredients, image, rating, reviews
		FROM order_items WHERE order_id=$1
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]Line, 0)
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.Name, &l.Category, &l.Price, &l.Quantity,
			&l.Ingredients, &l.Image, &l.Rating, &l.Reviews); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

package order

import "time"

// Line is a snapshot of a basket item at checkout time. Orders keep the full
// snapshot so a repeat re-adds exactly what was bought, even after the menu
// item changes or disappears.
type Line struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Ingredients []string `json:"ingredients"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
}

type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Items     []Line    `json:"items"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

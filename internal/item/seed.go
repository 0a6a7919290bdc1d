package item

// sampleMenu is the fixed catalog seeded into every new store. Catalog
// mutations go through the admin endpoints; the seed itself never changes at
// runtime.
func sampleMenu() []Item {
	return []Item{
		{
			ID:          1,
			Name:        "Classic Pancakes",
			Category:    "Breakfast",
			Price:       8.99,
			Quantity:    1,
			Ingredients: []string{"Flour", "Eggs", "Milk", "Butter", "Maple Syrup"},
			Image:       "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=500",
			Rating:      4.5,
			Reviews:     128,
		},
		{
			ID:          2,
			Name:        "Avocado Toast",
			Category:    "Breakfast",
			Price:       7.99,
			Quantity:    1,
			Ingredients: []string{"Sourdough Bread", "Avocado", "Eggs", "Cherry Tomatoes", "Microgreens"},
			Image:       "https://images.unsplash.com/photo-1541519227354-08fa5d50c44d?w=500",
			Rating:      4.3,
			Reviews:     95,
		},
		{
			ID:          3,
			Name:        "Grilled Salmon",
			Category:    "Dinner",
			Price:       24.99,
			Quantity:    1,
			Ingredients: []string{"Salmon Fillet", "Lemon", "Dill", "Olive Oil", "Asparagus"},
			Image:       "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=500",
			Rating:      4.7,
			Reviews:     156,
		},
		{
			ID:          4,
			Name:        "Beef Steak",
			Category:    "Dinner",
			Price:       29.99,
			Quantity:    1,
			Ingredients: []string{"Ribeye Steak", "Garlic", "Butter", "Rosemary", "Mashed Potatoes"},
			Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?w=500",
			Rating:      4.8,
			Reviews:     203,
		},
		{
			ID:          5,
			Name:        "Chocolate Cake",
			Category:    "Dessert",
			Price:       6.99,
			Quantity:    1,
			Ingredients: []string{"Dark Chocolate", "Flour", "Sugar", "Eggs", "Butter", "Vanilla"},
			Image:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500",
			Rating:      4.6,
			Reviews:     178,
		},
		{
			ID:          6,
			Name:        "Tiramisu",
			Category:    "Dessert",
			Price:       7.99,
			Quantity:    1,
			Ingredients: []string{"Mascarpone", "Coffee", "Ladyfingers", "Cocoa Powder", "Eggs"},
			Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=500",
			Rating:      4.4,
			Reviews:     142,
		},
	}
}

package models

// Category represents a spending category. Categories are shared across
// all users; IDs are stable across restarts. BudgetLimit is in cents.
type Category struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	BudgetLimit int64  `gorm:"not null;default:0" json:"budget_limit"`
	ColorCode   string `gorm:"size:7" json:"color_code"`
}

// DefaultCategories are seeded once when the category table is empty.
// IDs 1-8 are fixed and referenced by expenses.
var DefaultCategories = []Category{
	{ID: 1, Name: "Food & Dining", Description: "Restaurants, groceries, snacks", ColorCode: "#FF6B6B"},
	{ID: 2, Name: "Transportation", Description: "Fuel, taxi, public transport", ColorCode: "#4ECDC4"},
	{ID: 3, Name: "Shopping", Description: "Clothes, electronics, items", ColorCode: "#FFD166"},
	{ID: 4, Name: "Entertainment", Description: "Movies, games, hobbies", ColorCode: "#06D6A0"},
	{ID: 5, Name: "Bills & Utilities", Description: "Electricity, water, internet", ColorCode: "#118AB2"},
	{ID: 6, Name: "Healthcare", Description: "Medicine, doctor visits", ColorCode: "#EF476F"},
	{ID: 7, Name: "Education", Description: "Books, courses, tuition", ColorCode: "#7209B7"},
	{ID: 8, Name: "Others", Description: "Miscellaneous expenses", ColorCode: "#8A8A8A"},
}

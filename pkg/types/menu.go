package types

// MenuItem is a purchasable prepared-food offering. The Available flag is
// the sole gate on which items a new order may draw from.
type MenuItem struct {
	MenuItemID  int64
	Name        string // Unique, non-empty.
	Description string
	Price       float64 // Positive; validated by the caller, not the store.
	Category    string  // Free text.
	Available   bool    // "Available this week".
	ImagePath   string  // Optional reference under the data directory.
}

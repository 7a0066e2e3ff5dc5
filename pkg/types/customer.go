package types

// Customer is a buyer with delivery details. Phone is unique when present;
// an empty phone is stored as NULL so it never collides.
type Customer struct {
	CustomerID int64
	Name       string // Required.
	Address    string
	Complement string // Address complement / delivery notes.
	Phone      string // Unique when non-empty.
}

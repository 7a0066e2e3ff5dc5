// Package session holds presentation-side state: the login flag and the
// in-progress order cart. The store itself is stateless between calls;
// callers own a Session value and pass it to their handlers explicitly.
package session

// CartLine is one pending line of an order being assembled.
type CartLine struct {
	MenuItemID int64
	ItemName   string
	Quantity   int
	UnitPrice  float64 // Snapshot of the menu price when the line was added.
}

// Session is the mutable per-operator context. The zero value is a
// logged-out session with an empty cart.
type Session struct {
	LoggedIn bool
	Username string
	Cart     []CartLine
}

// Login records a successful credential verification.
func (s *Session) Login(username string) {
	s.LoggedIn = true
	s.Username = username
}

// Logout clears the login flag, the username, and any in-progress cart.
func (s *Session) Logout() {
	s.LoggedIn = false
	s.Username = ""
	s.ClearCart()
}

// AddToCart adds quantity of an item at the given unit price. Adding an
// item already in the cart increases its quantity; the price snapshot of
// the existing line is kept.
func (s *Session) AddToCart(menuItemID int64, name string, quantity int, unitPrice float64) {
	for i := range s.Cart {
		if s.Cart[i].MenuItemID == menuItemID {
			s.Cart[i].Quantity += quantity
			return
		}
	}
	s.Cart = append(s.Cart, CartLine{
		MenuItemID: menuItemID,
		ItemName:   name,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	})
}

// RemoveFromCart drops the line for the given item, if present.
func (s *Session) RemoveFromCart(menuItemID int64) {
	for i := range s.Cart {
		if s.Cart[i].MenuItemID == menuItemID {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			return
		}
	}
}

// ClearCart empties the cart.
func (s *Session) ClearCart() {
	s.Cart = nil
}

// Total returns the sum of quantity times unit price over the cart.
func (s *Session) Total() float64 {
	var total float64
	for _, line := range s.Cart {
		total += float64(line.Quantity) * line.UnitPrice
	}
	return total
}

package domain

import "time"

// CartLine is one purchasable entry in the cart: a product snapshot plus the
// requested quantity. The cart holds at most one line per product id;
// quantity is always >= 1 for a persisted line.
type CartLine struct {
	Product
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// SavedItem is a "saved for later" entry. At most one per product id; the
// timestamp records the first save and is not refreshed by repeated saves.
type SavedItem struct {
	Product
	SavedAt time.Time `json:"savedAt"`
}

// LineTotal is the line's contribution to the cart total.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// TotalItems sums the quantities across all lines.
func TotalItems(lines []CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums price*quantity across all lines.
func TotalPrice(lines []CartLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}

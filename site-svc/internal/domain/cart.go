package domain

import "math"

const (
	DeliveryFee = 5.0
	TaxRate     = 0.08
)

type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

func (l CartLine) LineTotal() float64 {
	return Round2(l.Item.Price * float64(l.Quantity))
}

type CartTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
	ItemCount   int     `json:"item_count"`
}

// Cart keeps at most one line per menu item id, in insertion order.
// It is not safe for concurrent use; the owning session serializes access.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges into the existing line for item.ID or appends a new line with quantity 1.
func (c *Cart) Add(item MenuItem) {
	if i := c.index(item.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
}

// UpdateQuantity sets the quantity of a line. Zero or negative removes it.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	if i := c.index(id); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

func (c *Cart) Remove(id string) {
	if i := c.index(id); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Quantity(id string) int {
	if i := c.index(id); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Totals() CartTotals {
	return ComputeTotals(c.lines)
}

func (c *Cart) index(id string) int {
	for i := range c.lines {
		if c.lines[i].Item.ID == id {
			return i
		}
	}
	return -1
}

// ComputeTotals prices a set of lines. An empty set costs nothing, not even delivery.
func ComputeTotals(lines []CartLine) CartTotals {
	if len(lines) == 0 {
		return CartTotals{}
	}

	var subtotal float64
	var count int
	for _, line := range lines {
		subtotal += line.Item.Price * float64(line.Quantity)
		count = addCount(count, line.Quantity)
	}
	subtotal = Round2(subtotal)
	tax := Round2(subtotal * TaxRate)

	return CartTotals{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Tax:         tax,
		Total:       Round2(subtotal + tax + DeliveryFee),
		ItemCount:   count,
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, line := range c.lines {
		n = addCount(n, line.Quantity)
	}
	return n
}

// addCount adds non-negative quantities, saturating at math.MaxInt.
func addCount(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

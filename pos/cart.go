package pos

import (
	"sync"

	"shoppos/models"
)

// Cart accumulates the lines of an in-progress sale. It is transient: never
// persisted, cleared on sale completion or cancellation. Line prices are
// snapshots taken when the product is added.
type Cart struct {
	mu    sync.Mutex
	lines []models.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddLine puts quantity units of the product in the cart, merging into an
// existing line for the same product. Quantities below 1 are treated as 1.
func (c *Cart) AddLine(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: quantity,
	})
}

// AdjustLine changes a line's quantity by delta. A resulting quantity below 1
// removes the line entirely. Unknown ids are ignored.
func (c *Cart) AdjustLine(id, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID != id {
			continue
		}
		q := c.lines[i].Quantity + delta
		if q < 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = q
		}
		return
	}
}

func (c *Cart) RemoveLine(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart contents.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sum float64
	for _, line := range c.lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

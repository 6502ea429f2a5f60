package domain

import (
	"fmt"
	"strings"
)

// Dish is an item on the menu
type Dish struct {
	id    int64
	name  string
	price float64
}

// NewDish creates a dish that has not been persisted yet
func NewDish(name string, price float64) (*Dish, error) {
	return NewDishWithID(0, name, price)
}

// NewDishWithID creates a dish carrying a storage identity
func NewDishWithID(id int64, name string, price float64) (*Dish, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "Dish name cannot be null or empty")
	}
	if !validAmount(price) {
		return nil, invalid("price", "Price cannot be negative")
	}
	if id < 0 {
		return nil, invalid("id", "Dish ID cannot be negative")
	}
	return &Dish{id: id, name: name, price: price}, nil
}

func (d *Dish) ID() int64      { return d.id }
func (d *Dish) Name() string   { return d.name }
func (d *Dish) Price() float64 { return d.price }

// SetPrice updates the price unless it is negative
func (d *Dish) SetPrice(price float64) Result {
	if !validAmount(price) {
		return failure(ErrValidation, "Price cannot be negative")
	}
	d.price = price
	return success("")
}

// DisplayString renders the dish as "[id] name | $price"
func (d *Dish) DisplayString() string {
	return fmt.Sprintf("[%d] %-20s | $%-6.2f", d.id, d.name, d.price)
}

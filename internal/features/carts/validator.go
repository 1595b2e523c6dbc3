package carts

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLineItems bounds the size of a cart or order.
const MaxLineItems = 100

var ErrNoProducts = errors.New("products is required")

// ValidateItems trims product ids and defaults missing quantities to 1.
func ValidateItems(items []LineItem) error {
	if items == nil {
		return ErrNoProducts
	}
	if len(items) > MaxLineItems {
		return fmt.Errorf("at most %d products are allowed", MaxLineItems)
	}
	for i := range items {
		items[i].ProductID = strings.TrimSpace(items[i].ProductID)
		if items[i].ProductID == "" {
			return fmt.Errorf("products[%d].productId is required", i)
		}
		if items[i].Quantity == 0 {
			items[i].Quantity = 1
		}
		if items[i].Quantity < 0 {
			return fmt.Errorf("products[%d].quantity must be positive", i)
		}
	}
	return nil
}

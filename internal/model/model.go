package model

import "strconv"

// ShoppingItem is one row of the shopping list.
type ShoppingItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`

	// IsEditing is true while the item's inline editor is open.
	// At most one item in a list carries it.
	IsEditing bool `json:"isEditing"`
}

// QuantityLabel is the text shown next to the name in list rows.
func (it ShoppingItem) QuantityLabel() string {
	return "Qty: " + strconv.Itoa(it.Quantity)
}

// FindItem returns the index of the item with the given id, or -1.
func FindItem(items []ShoppingItem, id int) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// EditingItem returns the item whose editor is open, if any.
func EditingItem(items []ShoppingItem) (ShoppingItem, bool) {
	for _, it := range items {
		if it.IsEditing {
			return it, true
		}
	}
	return ShoppingItem{}, false
}

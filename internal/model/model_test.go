package model

import "testing"

func TestFindItem(t *testing.T) {
	items := []ShoppingItem{{ID: 1, Name: "Milk"}, {ID: 4, Name: "Eggs"}}
	if got := FindItem(items, 4); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := FindItem(items, 2); got != -1 {
		t.Fatalf("expected -1 for missing id, got %d", got)
	}
	if got := FindItem(nil, 1); got != -1 {
		t.Fatalf("expected -1 for empty list, got %d", got)
	}
}

func TestEditingItem(t *testing.T) {
	if _, ok := EditingItem([]ShoppingItem{{ID: 1}}); ok {
		t.Fatalf("expected no editing item")
	}
	it, ok := EditingItem([]ShoppingItem{{ID: 1}, {ID: 2, IsEditing: true}})
	if !ok || it.ID != 2 {
		t.Fatalf("expected item 2 editing, got %+v ok=%v", it, ok)
	}
}

func TestQuantityLabel(t *testing.T) {
	if got := (ShoppingItem{Quantity: 3}).QuantityLabel(); got != "Qty: 3" {
		t.Fatalf("unexpected label %q", got)
	}
}

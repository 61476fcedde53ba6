package mutate

import "shoplist/internal/model"

// The helpers in this file never modify their input slice. Each returns a
// freshly allocated list so callers can publish it as a new snapshot.

// AppendItem returns items with it appended.
func AppendItem(items []model.ShoppingItem, it model.ShoppingItem) []model.ShoppingItem {
	out := make([]model.ShoppingItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, it)
}

// OpenEditor marks the item with id as editing and clears the flag on every
// other item. An unknown id closes every editor.
func OpenEditor(items []model.ShoppingItem, id int) []model.ShoppingItem {
	out := make([]model.ShoppingItem, len(items))
	for i, it := range items {
		it.IsEditing = it.ID == id
		out[i] = it
	}
	return out
}

// CloseEditors clears the editing flag on every item.
func CloseEditors(items []model.ShoppingItem) []model.ShoppingItem {
	return OpenEditor(items, noItem)
}

// noItem never matches a real id; ids start at 1.
const noItem = 0

type ReplaceResult struct {
	Items   []model.ShoppingItem
	Item    model.ShoppingItem
	Changed bool
}

// SaveItem applies name and quantity to the item with id and closes every
// editor in the same rebuilt list. When id is unknown the editors are still
// closed and a NotFoundError is returned alongside the rebuilt list.
func SaveItem(items []model.ShoppingItem, id int, name string, quantity int) (ReplaceResult, error) {
	out := CloseEditors(items)
	idx := model.FindItem(out, id)
	if idx < 0 {
		return ReplaceResult{Items: out}, NotFoundError{Kind: "item", ID: id}
	}
	prev := out[idx]
	out[idx].Name = name
	out[idx].Quantity = quantity
	return ReplaceResult{
		Items:   out,
		Item:    out[idx],
		Changed: prev.Name != name || prev.Quantity != quantity,
	}, nil
}

// DeleteItem removes the item with id. ok is false (and items is returned
// unchanged) when no item has that id.
func DeleteItem(items []model.ShoppingItem, id int) (out []model.ShoppingItem, removed model.ShoppingItem, ok bool) {
	idx := model.FindItem(items, id)
	if idx < 0 {
		return items, model.ShoppingItem{}, false
	}
	out = make([]model.ShoppingItem, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return out, items[idx], true
}

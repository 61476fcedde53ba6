package store

import (
	"strconv"
	"strings"

	"shoplist/internal/model"
	"shoplist/internal/mutate"

	"go.uber.org/zap"
)

// Slot names one independently observable piece of State.
type Slot int

const (
	SlotItems Slot = iota
	SlotAddDialog
	SlotNameBuffer
	SlotQuantityBuffer
)

func (s Slot) String() string {
	switch s {
	case SlotItems:
		return "items"
	case SlotAddDialog:
		return "addDialog"
	case SlotNameBuffer:
		return "nameBuffer"
	case SlotQuantityBuffer:
		return "quantityBuffer"
	default:
		return "unknown"
	}
}

type subscriber struct {
	id int
	fn func(Slot)
}

// State owns the shopping list and the add dialog's transient fields for one
// screen. It is not safe for concurrent use; the TUI mutates it only from its
// Update loop.
//
// Every write notifies subscribers synchronously with the slot written, even
// when the value did not change. The items slice is replaced on every write and
// never handed out without copying.
type State struct {
	items            []model.ShoppingItem
	addDialogVisible bool
	nameBuffer       string
	quantityBuffer   string

	// nextID is independent of len(items) so ids are never reused after deletes.
	nextID int

	subs    []subscriber
	nextSub int

	log *zap.Logger
}

// NewState returns an empty list. A nil logger disables logging.
func NewState(log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	return &State{nextID: 1, log: log}
}

// Subscribe registers fn to be called after every slot write. The returned
// func removes the subscription.
func (s *State) Subscribe(fn func(Slot)) (unsubscribe func()) {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *State) notify(slot Slot) {
	// Subscribers may unsubscribe while being notified.
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(slot)
	}
}

func (s *State) setItems(items []model.ShoppingItem) {
	s.items = items
	s.notify(SlotItems)
}

// Items returns a copy of the current list.
func (s *State) Items() []model.ShoppingItem {
	out := make([]model.ShoppingItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *State) Len() int { return len(s.items) }

func (s *State) Item(id int) (model.ShoppingItem, bool) {
	idx := model.FindItem(s.items, id)
	if idx < 0 {
		return model.ShoppingItem{}, false
	}
	return s.items[idx], true
}

func (s *State) AddDialogVisible() bool { return s.addDialogVisible }
func (s *State) NameBuffer() string     { return s.nameBuffer }
func (s *State) QuantityBuffer() string { return s.quantityBuffer }

func (s *State) SetNameBuffer(v string) {
	s.nameBuffer = v
	s.notify(SlotNameBuffer)
}

func (s *State) SetQuantityBuffer(v string) {
	s.quantityBuffer = v
	s.notify(SlotQuantityBuffer)
}

func (s *State) OpenAddDialog() {
	s.addDialogVisible = true
	s.notify(SlotAddDialog)
}

// CancelAddDialog hides the dialog. The buffers keep their contents so the
// draft is still there the next time the dialog opens.
func (s *State) CancelAddDialog() {
	s.addDialogVisible = false
	s.notify(SlotAddDialog)
}

// ConfirmAdd creates an item from the dialog buffers.
//
// On ErrBlankName or a *QuantityError nothing changes and the dialog stays
// open. On success the item is appended, the dialog is hidden and both buffers
// are cleared.
func (s *State) ConfirmAdd() (model.ShoppingItem, error) {
	if strings.TrimSpace(s.nameBuffer) == "" {
		return model.ShoppingItem{}, ErrBlankName
	}
	qty, err := ParseQuantity(s.quantityBuffer)
	if err != nil {
		s.log.Debug("add rejected", zap.String("quantity", s.quantityBuffer), zap.Error(err))
		return model.ShoppingItem{}, err
	}

	it := s.add(s.nameBuffer, qty)
	s.addDialogVisible = false
	s.notify(SlotAddDialog)
	s.SetNameBuffer("")
	s.SetQuantityBuffer("")
	return it, nil
}

// Seed appends an item without going through the dialog.
func (s *State) Seed(name string, quantity int) (model.ShoppingItem, error) {
	if strings.TrimSpace(name) == "" {
		return model.ShoppingItem{}, ErrBlankName
	}
	if quantity < 0 {
		return model.ShoppingItem{}, &QuantityError{Text: strconv.Itoa(quantity)}
	}
	return s.add(name, quantity), nil
}

func (s *State) add(name string, quantity int) model.ShoppingItem {
	it := model.ShoppingItem{ID: s.nextID, Name: name, Quantity: quantity}
	s.nextID++
	s.setItems(mutate.AppendItem(s.items, it))
	s.log.Debug("item added", zap.Int("id", it.ID), zap.String("name", it.Name), zap.Int("quantity", it.Quantity))
	return it
}

// BeginEdit opens the editor for id and closes every other editor. With an
// unknown id it only closes editors.
func (s *State) BeginEdit(id int) {
	s.setItems(mutate.OpenEditor(s.items, id))
}

// CancelEdit closes every editor without changing any item.
func (s *State) CancelEdit() {
	s.setItems(mutate.CloseEditors(s.items))
}

type SaveResult struct {
	Item    model.ShoppingItem
	Changed bool
	// QuantityErr is set when the quantity text was replaced by DefaultQuantity.
	QuantityErr error
}

// SaveEdit applies the editor's raw name and quantity text to item id and
// closes every editor, in a single list replacement. Quantity text that does
// not parse becomes DefaultQuantity and is reported in SaveResult.QuantityErr
// without failing the save.
func (s *State) SaveEdit(id int, name, quantityText string) (SaveResult, error) {
	qty, qtyErr := QuantityOrDefault(quantityText)
	res, err := mutate.SaveItem(s.items, id, name, qty)
	s.setItems(res.Items)
	if err != nil {
		return SaveResult{QuantityErr: qtyErr}, err
	}
	s.log.Debug("item saved", zap.Int("id", id), zap.Bool("changed", res.Changed))
	return SaveResult{Item: res.Item, Changed: res.Changed, QuantityErr: qtyErr}, nil
}

// Delete removes the item with id. It reports false, and leaves the list and
// its subscribers untouched, when the id is not present.
func (s *State) Delete(id int) (model.ShoppingItem, bool) {
	out, removed, ok := mutate.DeleteItem(s.items, id)
	if !ok {
		return model.ShoppingItem{}, false
	}
	s.setItems(out)
	s.log.Debug("item deleted", zap.Int("id", id))
	return removed, true
}

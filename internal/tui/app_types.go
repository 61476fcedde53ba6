package tui

import "shoplist/internal/store"

type modalKind int

const (
	modalNone modalKind = iota
	modalAddItem
	modalHelp
)

// screenFocus is the focused control on the list screen when no modal or
// editor has the keyboard.
type screenFocus int

const (
	focusList screenFocus = iota
	focusAddButton
)

type dialogFocus int

const (
	dialogFocusName dialogFocus = iota
	dialogFocusQuantity
	dialogFocusAdd
	dialogFocusCancel
	dialogFocusCount
)

type editorFocus int

const (
	editorFocusName editorFocus = iota
	editorFocusQuantity
	editorFocusSave
	editorFocusCount
)

type minibufferDoneMsg struct{ seq int }

// slotChanges records which state slots were written since the model last
// synced its views. It is shared by pointer between the state subscription
// and every copy of appModel.
type slotChanges struct {
	items          bool
	addDialog      bool
	nameBuffer     bool
	quantityBuffer bool
}

func (c *slotChanges) mark(s store.Slot) {
	switch s {
	case store.SlotItems:
		c.items = true
	case store.SlotAddDialog:
		c.addDialog = true
	case store.SlotNameBuffer:
		c.nameBuffer = true
	case store.SlotQuantityBuffer:
		c.quantityBuffer = true
	}
}

func (c *slotChanges) any() bool {
	return c.items || c.addDialog || c.nameBuffer || c.quantityBuffer
}

func (c *slotChanges) reset() { *c = slotChanges{} }

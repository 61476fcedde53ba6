package tui

import (
	"shoplist/internal/model"
	"shoplist/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type appModel struct {
	state *store.State
	log   *zap.Logger

	// changes is filled by the state subscription and drained by
	// syncFromState after every Update.
	changes *slotChanges

	width  int
	height int

	focus     screenFocus
	itemsList list.Model
	editor    *itemEditor

	// pendingSelectID moves the selection to a newly added row on the next
	// items refresh.
	pendingSelectID int

	modal       modalKind
	dialogName  textinput.Model
	dialogQty   textinput.Model
	dialogFocus dialogFocus
	dialogErr   string

	minibufferText string
	minibufferSeq  int
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	// Header (title, gap, Add button, gap) and footer (gap, keys, minibuffer).
	chromeLines = 7
)

func newAppModel(state *store.State, log *zap.Logger) appModel {
	if log == nil {
		log = zap.NewNop()
	}
	m := appModel{
		state:   state,
		log:     log,
		changes: &slotChanges{},
		width:   defaultWidth,
		height:  defaultHeight,
		editor:  newItemEditor(),
	}
	m.itemsList = newItemsList(m.editor)
	m.dialogName = newDialogInput("e.g. Milk", 200)
	m.dialogQty = newDialogInput("1", 12)

	state.Subscribe(m.changes.mark)

	// Pick up whatever the state already holds (seeded items, an open dialog).
	m.changes.items = true
	m.changes.addDialog = true
	m.changes.nameBuffer = true
	m.changes.quantityBuffer = true
	m.syncFromState()
	m.resizeList()
	return m
}

// syncFromState re-renders the parts of the screen that read the slots
// written since the last sync.
func (m *appModel) syncFromState() tea.Cmd {
	c := m.changes
	if !c.any() {
		return nil
	}
	var cmds []tea.Cmd
	if c.items {
		cmds = append(cmds, m.refreshItems())
	}
	if c.addDialog {
		cmds = append(cmds, m.syncAddDialog())
	}
	if c.nameBuffer && m.dialogName.Value() != m.state.NameBuffer() {
		m.dialogName.SetValue(m.state.NameBuffer())
	}
	if c.quantityBuffer && m.dialogQty.Value() != m.state.QuantityBuffer() {
		m.dialogQty.SetValue(m.state.QuantityBuffer())
	}
	c.reset()
	return tea.Batch(cmds...)
}

func (m *appModel) refreshItems() tea.Cmd {
	items := m.state.Items()

	curID := 0
	if r, ok := selectedItemRow(m.itemsList); ok {
		curID = r.item.ID
	}

	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, itemRow{item: it})
	}
	m.itemsList.SetItems(rows)

	var cmd tea.Cmd
	editing, isEditing := model.EditingItem(items)
	switch {
	case isEditing:
		if !m.editor.open || m.editor.forID != editing.ID {
			cmd = m.editor.startFor(editing)
		}
		selectListItemByID(&m.itemsList, editing.ID)
		m.setFocus(focusList)
	default:
		m.editor.close()
		switch {
		case m.pendingSelectID != 0 && selectListItemByID(&m.itemsList, m.pendingSelectID):
		case curID != 0 && selectListItemByID(&m.itemsList, curID):
		default:
			if n := len(rows); n > 0 && m.itemsList.Index() >= n {
				m.itemsList.Select(n - 1)
			}
		}
	}
	m.pendingSelectID = 0
	return cmd
}

// setFocus moves keyboard focus on the list screen and tells the row delegate
// whether the selection should be highlighted.
func (m *appModel) setFocus(f screenFocus) {
	m.focus = f
	m.itemsList.SetDelegate(itemDelegate{editor: m.editor, listFocused: f == focusList})
}

func (m *appModel) syncAddDialog() tea.Cmd {
	if m.state.AddDialogVisible() {
		if m.modal == modalAddItem {
			return nil
		}
		m.modal = modalAddItem
		m.dialogErr = ""
		m.dialogName.SetValue(m.state.NameBuffer())
		m.dialogName.CursorEnd()
		m.dialogQty.SetValue(m.state.QuantityBuffer())
		m.dialogQty.CursorEnd()
		return m.setDialogFocus(dialogFocusName)
	}
	if m.modal == modalAddItem {
		m.modal = modalNone
		m.dialogErr = ""
		m.dialogName.Blur()
		m.dialogQty.Blur()
	}
	return nil
}

func (m *appModel) resizeList() {
	h := m.height - chromeLines
	if h < 3 {
		h = 3
	}
	w := m.width
	if w < 24 {
		w = 24
	}
	m.itemsList.SetSize(w, h)
}

func zapItem(it model.ShoppingItem) []zap.Field {
	return []zap.Field{
		zap.Int("id", it.ID),
		zap.String("name", it.Name),
		zap.Int("quantity", it.Quantity),
	}
}

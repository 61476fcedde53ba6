package tui

import (
	"fmt"
	"strings"
	"time"

	"shoplist/internal/format"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const minibufferTTL = 2500 * time.Millisecond

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil

	case minibufferDoneMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.modal == modalHelp:
			m, cmd = m.updateHelp(msg)
		case m.modal == modalAddItem:
			m, cmd = m.updateAddDialog(msg)
		case m.editor.open:
			m, cmd = m.updateEditor(msg)
		default:
			m, cmd = m.updateList(msg)
		}
		syncCmd := m.syncFromState()
		return m, tea.Batch(cmd, syncCmd)
	}

	// Non-key messages (cursor blink etc.) go to whatever has focus.
	switch {
	case m.modal == modalAddItem:
		switch m.dialogFocus {
		case dialogFocusName:
			m.dialogName, cmd = m.dialogName.Update(msg)
		case dialogFocusQuantity:
			m.dialogQty, cmd = m.dialogQty.Update(msg)
		}
	case m.editor.open:
		cmd = m.editor.updateInput(msg)
	}
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.modal = modalHelp
		return m, nil
	case "a":
		m.state.OpenAddDialog()
		return m, nil
	case "tab", "shift+tab":
		if m.focus == focusList {
			m.setFocus(focusAddButton)
		} else {
			m.setFocus(focusList)
		}
		return m, nil
	case "enter":
		if m.focus == focusAddButton {
			m.state.OpenAddDialog()
			return m, nil
		}
		return m.editSelected()
	case "e":
		return m.editSelected()
	case "d", "x", "delete":
		return m.deleteSelected()
	case "y":
		return m.copyList()
	}

	if m.focus != focusList {
		if msg.String() == "down" || msg.String() == "j" {
			m.setFocus(focusList)
		}
		return m, nil
	}
	if (msg.String() == "up" || msg.String() == "k") && m.itemsList.Index() == 0 {
		m.setFocus(focusAddButton)
		return m, nil
	}
	var cmd tea.Cmd
	m.itemsList, cmd = m.itemsList.Update(msg)
	return m, cmd
}

// editSelected opens the inline editor for the selected row and closes any
// other editor.
func (m appModel) editSelected() (appModel, tea.Cmd) {
	r, ok := selectedItemRow(m.itemsList)
	if !ok {
		return m, nil
	}
	m.setFocus(focusList)
	m.state.BeginEdit(r.item.ID)
	m.log.Debug("edit opened", zap.Int("id", r.item.ID))
	return m, nil
}

// deleteSelected removes the selected row by id.
func (m appModel) deleteSelected() (appModel, tea.Cmd) {
	r, ok := selectedItemRow(m.itemsList)
	if !ok {
		return m, nil
	}
	removed, ok := m.state.Delete(r.item.ID)
	if !ok {
		return m, nil
	}
	m.log.Info("item deleted", zapItem(removed)...)
	return m, m.showMinibuffer("Deleted: " + removed.Name)
}

// copyList puts the list on the clipboard in the same text form --print text
// uses.
func (m appModel) copyList() (appModel, tea.Cmd) {
	items := m.state.Items()
	if len(items) == 0 {
		return m, m.showMinibuffer("Nothing to copy")
	}
	var b strings.Builder
	if err := format.WriteItems(&b, items, "text", false); err != nil {
		return m, m.showMinibuffer("Copy failed: " + err.Error())
	}
	if err := writeClipboard(b.String()); err != nil {
		m.log.Warn("clipboard copy failed", zap.Error(err))
		return m, m.showMinibuffer("Copy failed: " + err.Error())
	}
	m.log.Debug("list copied", zap.Int("items", len(items)))
	noun := "items"
	if len(items) == 1 {
		noun = "item"
	}
	return m, m.showMinibuffer(fmt.Sprintf("Copied %d %s", len(items), noun))
}

func (m appModel) updateEditor(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state.CancelEdit()
		return m, nil
	case "tab":
		return m, m.editor.cycleFocus(1)
	case "shift+tab":
		return m, m.editor.cycleFocus(-1)
	case "enter", "ctrl+s":
		return m.saveEditor()
	}
	return m, m.editor.updateInput(msg)
}

func (m appModel) saveEditor() (appModel, tea.Cmd) {
	id := m.editor.forID
	qtyText := m.editor.qty.Value()
	res, err := m.state.SaveEdit(id, m.editor.name.Value(), qtyText)
	if err != nil {
		m.log.Warn("save failed", zap.Int("id", id), zap.Error(err))
		return m, m.showMinibuffer(err.Error())
	}
	if res.QuantityErr != nil {
		m.log.Warn("quantity replaced with default", zap.Int("id", id), zap.String("text", qtyText), zap.Error(res.QuantityErr))
		return m, m.showMinibuffer(fmt.Sprintf("Quantity %q is not a whole number; saved as %d", qtyText, res.Item.Quantity))
	}
	m.log.Info("item saved", zapItem(res.Item)...)
	return m, nil
}

func (m appModel) updateHelp(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "?", "q", "enter":
		m.modal = modalNone
	}
	return m, nil
}

func (m *appModel) showMinibuffer(text string) tea.Cmd {
	m.minibufferText = text
	m.minibufferSeq++
	seq := m.minibufferSeq
	return tea.Tick(minibufferTTL, func(time.Time) tea.Msg { return minibufferDoneMsg{seq: seq} })
}

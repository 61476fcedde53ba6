package tui

import (
	"strconv"
	"strings"

	"shoplist/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// itemEditor holds the inline editor's text for the one item being edited.
// The text is local to the editor until Save; the list only changes on save.
//
// appModel and the list delegate share it by pointer so the delegate renders
// the live input state.
type itemEditor struct {
	open  bool
	forID int
	name  textinput.Model
	qty   textinput.Model
	focus editorFocus
}

func newItemEditor() *itemEditor {
	e := &itemEditor{}
	e.name = textinput.New()
	e.name.Prompt = ""
	e.name.Placeholder = "Item"
	// Unlimited: SetValue must never cut a seeded item.
	e.name.CharLimit = 0
	e.qty = textinput.New()
	e.qty.Prompt = ""
	e.qty.Placeholder = "1"
	e.qty.CharLimit = 0
	return e
}

// startFor seeds the inputs from it and focuses the name field.
func (e *itemEditor) startFor(it model.ShoppingItem) tea.Cmd {
	e.open = true
	e.forID = it.ID
	e.name.SetValue(it.Name)
	e.name.CursorEnd()
	e.qty.SetValue(strconv.Itoa(it.Quantity))
	e.qty.CursorEnd()
	return e.setFocus(editorFocusName)
}

func (e *itemEditor) close() {
	e.open = false
	e.forID = 0
	e.name.Blur()
	e.qty.Blur()
}

func (e *itemEditor) setFocus(f editorFocus) tea.Cmd {
	e.focus = f
	e.name.Blur()
	e.qty.Blur()
	switch f {
	case editorFocusName:
		return e.name.Focus()
	case editorFocusQuantity:
		return e.qty.Focus()
	}
	return nil
}

func (e *itemEditor) cycleFocus(delta int) tea.Cmd {
	n := int(editorFocusCount)
	return e.setFocus(editorFocus(((int(e.focus)+delta)%n + n) % n))
}

// updateInput forwards msg to the focused text field.
func (e *itemEditor) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch e.focus {
	case editorFocusName:
		e.name, cmd = e.name.Update(msg)
	case editorFocusQuantity:
		e.qty, cmd = e.qty.Update(msg)
	}
	return cmd
}

// renderItemEditor draws the editor row: name field, quantity field, Save.
func renderItemEditor(e *itemEditor, width int) string {
	inner := rowInnerWidth(width)
	save := styleButton(e.focus == editorFocusSave).Render("Save")
	saveW := xansi.StringWidth(save)

	fieldsW := inner - saveW - 2
	if fieldsW < 12 {
		fieldsW = 12
	}
	qtyW := 8
	nameW := fieldsW - qtyW - 1
	if nameW < 4 {
		nameW = 4
	}
	e.name.Width = nameW - 3
	e.qty.Width = qtyW - 3

	line := strings.Join([]string{
		renderInputLine(nameW, e.name.View()),
		" ",
		renderInputLine(qtyW, e.qty.View()),
		"  ",
		save,
	}, "")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorEditorBorder).
		Padding(0, 1).
		Render(padRight(line, inner))
}

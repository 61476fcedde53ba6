package tui

import (
	"errors"
	"strings"

	"shoplist/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const addDialogTitle = "Add Shopping Item"

func newDialogInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	return in
}

func (m *appModel) setDialogFocus(f dialogFocus) tea.Cmd {
	m.dialogFocus = f
	m.dialogName.Blur()
	m.dialogQty.Blur()
	switch f {
	case dialogFocusName:
		return m.dialogName.Focus()
	case dialogFocusQuantity:
		return m.dialogQty.Focus()
	}
	return nil
}

func (m *appModel) cycleDialogFocus(delta int) tea.Cmd {
	n := int(dialogFocusCount)
	return m.setDialogFocus(dialogFocus(((int(m.dialogFocus)+delta)%n + n) % n))
}

func (m appModel) updateAddDialog(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Dismiss requests are ignored; Cancel is explicit.
		return m, nil
	case "ctrl+g":
		m.state.CancelAddDialog()
		return m, nil
	case "tab", "down":
		return m, m.cycleDialogFocus(1)
	case "shift+tab", "up":
		return m, m.cycleDialogFocus(-1)
	case "enter":
		if m.dialogFocus == dialogFocusCancel {
			m.state.CancelAddDialog()
			return m, nil
		}
		return m.confirmAddDialog()
	}

	var cmd tea.Cmd
	switch m.dialogFocus {
	case dialogFocusName:
		m.dialogName, cmd = m.dialogName.Update(msg)
		if v := m.dialogName.Value(); v != m.state.NameBuffer() {
			m.state.SetNameBuffer(v)
		}
	case dialogFocusQuantity:
		m.dialogQty, cmd = m.dialogQty.Update(msg)
		if v := m.dialogQty.Value(); v != m.state.QuantityBuffer() {
			m.state.SetQuantityBuffer(v)
		}
	}
	return m, cmd
}

func (m appModel) confirmAddDialog() (appModel, tea.Cmd) {
	it, err := m.state.ConfirmAdd()
	if err != nil {
		var qe *store.QuantityError
		switch {
		case errors.Is(err, store.ErrBlankName):
			m.dialogErr = "Enter an item name."
			return m, m.setDialogFocus(dialogFocusName)
		case errors.As(err, &qe):
			m.dialogErr = "Quantity must be a whole number (0 or more)."
			return m, m.setDialogFocus(dialogFocusQuantity)
		default:
			m.dialogErr = err.Error()
			return m, nil
		}
	}
	m.log.Info("item added from dialog", zapItem(it)...)
	// The new row becomes the selection.
	m.pendingSelectID = it.ID
	return m, m.showMinibuffer("Added: " + it.Name)
}

func (m appModel) renderAddDialog() string {
	bodyW := modalBodyWidth(m.width)
	m.dialogName.Width = bodyW - 3
	m.dialogQty.Width = bodyW - 3

	label := func(s string, focused bool) string {
		st := styleMuted()
		if focused {
			st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		}
		return st.Render(s)
	}

	add := styleButton(m.dialogFocus == dialogFocusAdd).Render("Add")
	cancel := styleButton(m.dialogFocus == dialogFocusCancel).Render("Cancel")
	gap := bodyW - lipgloss.Width(add) - lipgloss.Width(cancel)
	if gap < 1 {
		gap = 1
	}
	buttons := add + strings.Repeat(" ", gap) + cancel

	lines := []string{
		label("Enter Item", m.dialogFocus == dialogFocusName),
		renderInputLine(bodyW, m.dialogName.View()),
		"",
		label("Enter Quantity", m.dialogFocus == dialogFocusQuantity),
		renderInputLine(bodyW, m.dialogQty.View()),
		"",
	}
	if m.dialogErr != "" {
		lines = append(lines, styleError().Width(bodyW).Render(m.dialogErr), "")
	}
	lines = append(lines,
		buttons,
		"",
		styleMuted().Width(bodyW).Render("tab: focus   enter: select   ctrl+g: cancel"),
	)
	return renderModalBox(m.width, addDialogTitle, strings.Join(lines, "\n"))
}

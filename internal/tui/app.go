package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const screenTitle = "Shopping List"

func (m appModel) View() string {
	var frame string
	switch m.modal {
	case modalAddItem:
		frame = overlayCenter(m.width, m.height, m.renderAddDialog())
	case modalHelp:
		frame = overlayCenter(m.width, m.height, m.renderHelp())
	default:
		frame = m.viewListScreen()
	}
	return normalizePane(frame, m.width, m.height)
}

func (m appModel) viewListScreen() string {
	count := m.state.Len()
	noun := "items"
	if count == 1 {
		noun = "item"
	}
	header := lipgloss.NewStyle().Bold(true).Render(screenTitle) +
		styleMuted().Render(fmt.Sprintf("  %d %s", count, noun))

	addLabel := "+ Add Item"
	if m.focus == focusAddButton {
		addLabel = glyphCursor() + " Add Item"
	}
	addButton := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		styleButton(m.focus == focusAddButton).Render(addLabel))

	var body string
	if count == 0 {
		body = styleMuted().Render("No items yet. Press a to add one.")
	} else {
		body = m.itemsList.View()
	}
	listH := m.height - chromeLines
	if listH < 3 {
		listH = 3
	}
	body = normalizePane(body, m.width, listH)

	return strings.Join([]string{
		header,
		"",
		addButton,
		"",
		body,
		"",
		styleMuted().Render(m.footerHints()),
		m.minibufferText,
	}, "\n")
}

func (m appModel) footerHints() string {
	if m.editor.open {
		return "tab: field   enter/ctrl+s: save   esc: close editor"
	}
	return "a: add   e: edit   d: delete   y: copy   ?: help   q: quit"
}

package tui

import "shoplist/internal/docs"

func (m appModel) renderHelp() string {
	md, ok := docs.Get(docs.DefaultTopic)
	if !ok {
		md = "No help available."
	}
	body := renderMarkdown(md, modalBodyWidth(m.width))
	body += "\n\n" + styleMuted().Render("esc/?: close")
	return renderModalBox(m.width, "Help", body)
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	prevTab   key.Binding
	nextTab   key.Binding
	savePNG   key.Binding
	saveSVG   key.Binding
	saveHTML  key.Binding
	copyValue key.Binding
	assist    key.Binding
	stylePane key.Binding
	preview   key.Binding
	buildInfo key.Binding
	addBtn    key.Binding
	delBtn    key.Binding
	cycle     key.Binding
	toggle    key.Binding
	loadImage key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	prevTab:   key.NewBinding(key.WithKeys("shift+left")),
	nextTab:   key.NewBinding(key.WithKeys("shift+right")),
	savePNG:   key.NewBinding(key.WithKeys("ctrl+p")),
	saveSVG:   key.NewBinding(key.WithKeys("ctrl+s")),
	saveHTML:  key.NewBinding(key.WithKeys("ctrl+h")),
	copyValue: key.NewBinding(key.WithKeys("ctrl+y")),
	assist:    key.NewBinding(key.WithKeys("ctrl+g")),
	stylePane: key.NewBinding(key.WithKeys("ctrl+t")),
	preview:   key.NewBinding(key.WithKeys("ctrl+o")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	addBtn:    key.NewBinding(key.WithKeys("ctrl+a")),
	delBtn:    key.NewBinding(key.WithKeys("ctrl+d")),
	cycle:     key.NewBinding(key.WithKeys("ctrl+e")),
	toggle:    key.NewBinding(key.WithKeys("ctrl+r")),
	loadImage: key.NewBinding(key.WithKeys("ctrl+l")),
}

// Package terminal shows route previews in a full-screen, scrollable viewer.
package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Viewer pages through a block of text on a tcell screen.
type Viewer struct {
	screen tcell.Screen
	title  string
	lines  []string
	top    int
	left   int
}

// NewViewer creates a viewer for content on an initialised screen.
func NewViewer(screen tcell.Screen, title, content string) *Viewer {
	return &Viewer{
		screen: screen,
		title:  title,
		lines:  strings.Split(content, "\n"),
	}
}

// View opens the terminal, shows content until the user quits and restores
// the terminal afterwards.
func View(title, content string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	defer screen.Fini()

	return NewViewer(screen, title, content).Run()
}

// Run draws and handles events until the user quits.
func (v *Viewer) Run() error {
	for {
		v.Draw()
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.HandleEvent(ev) {
			return nil
		}
	}
}

// pageHeight is the number of content rows; the last row is the status line.
func (v *Viewer) pageHeight() int {
	_, h := v.screen.Size()
	return max(h-1, 1)
}

// HandleEvent applies one event and reports whether the viewer should close.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		half := max(v.pageHeight()/2, 1)
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			v.scroll(-1, 0)
		case tcell.KeyDown:
			v.scroll(1, 0)
		case tcell.KeyLeft:
			v.scroll(0, -1)
		case tcell.KeyRight:
			v.scroll(0, 1)
		case tcell.KeyPgUp, tcell.KeyCtrlU:
			v.scroll(-half, 0)
		case tcell.KeyPgDn, tcell.KeyCtrlD:
			v.scroll(half, 0)
		case tcell.KeyHome:
			v.top, v.left = 0, 0
		case tcell.KeyEnd:
			v.scroll(len(v.lines), 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'j':
				v.scroll(1, 0)
			case 'k':
				v.scroll(-1, 0)
			case 'h':
				v.scroll(0, -1)
			case 'l':
				v.scroll(0, 1)
			case 'J':
				v.scroll(half, 0)
			case 'K':
				v.scroll(-half, 0)
			case 'g':
				v.top = 0
			case 'G':
				v.scroll(len(v.lines), 0)
			}
		}
	}
	return false
}

// scroll moves the view, keeping at least one page of content on screen.
func (v *Viewer) scroll(rows, cols int) {
	maxTop := max(len(v.lines)-v.pageHeight(), 0)
	v.top = min(max(v.top+rows, 0), maxTop)

	w, _ := v.screen.Size()
	widest := 0
	for _, line := range v.lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	maxLeft := max(widest-w, 0)
	v.left = min(max(v.left+cols, 0), maxLeft)
}

// Offset returns the first visible row and column.
func (v *Viewer) Offset() (top, left int) {
	return v.top, v.left
}

// Draw renders the visible part of the content and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, _ := v.screen.Size()
	rows := v.pageHeight()

	for y := 0; y < rows && v.top+y < len(v.lines); y++ {
		v.drawLine(y, v.lines[v.top+y], v.left, tcell.StyleDefault)
	}

	last := min(v.top+rows, len(v.lines))
	status := fmt.Sprintf("[ %s ] lines %d-%d of %d | arrows/hjkl scroll, q quit",
		v.title, v.top+1, last, len(v.lines))
	status += strings.Repeat(" ", max(w-runewidth.StringWidth(status), 0))
	v.drawLine(rows, status, 0, tcell.StyleDefault.Reverse(true))

	v.screen.Show()
}

// drawLine writes text on row y, skipping the first skip columns.
func (v *Viewer) drawLine(y int, text string, skip int, style tcell.Style) {
	w, _ := v.screen.Size()
	col := -skip
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col >= w {
			break
		}
		if col >= 0 {
			v.screen.SetContent(col, y, r, nil, style)
		}
		col += rw
	}
}

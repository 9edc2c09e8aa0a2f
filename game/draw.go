package game

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/wordrow/row"
)

const (
	cellGap  = 1
	hintText = "letters type · Backspace erases · Enter submits · Esc quits"
)

var (
	styleDefault = tcell.StyleDefault
	styleLetter  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCursor  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
)

// rowCells renders the row as one rune per cell, '_' for empty cells
func rowCells(st row.State) []rune {
	cells := make([]rune, row.Length)
	for i, l := range st.Letters {
		if l == "" {
			cells[i] = '_'
		} else {
			cells[i] = rune(l[0])
		}
	}
	return cells
}

// rowWidth is the number of columns the echoed row takes
func rowWidth() int {
	return row.Length + (row.Length-1)*cellGap
}

// drawText writes s at (x, y) honouring wide runes and returns the next column
func (g *Game) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= g.width {
			break
		}
		g.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// centered returns the column that centers text of width w
func (g *Game) centered(w int) int {
	x := (g.width - w) / 2
	if x < 0 {
		return 0
	}
	return x
}

func (g *Game) draw() {
	g.screen.Clear()

	if g.cursorError && time.Since(g.cursorErrorTime).Milliseconds() > errorBlinkMs {
		g.cursorError = false
	}

	y := g.height / 2

	label := fmt.Sprintf("guess %d/%d", g.board.Current()+1, g.board.Lines())
	if g.board.Full() {
		label = fmt.Sprintf("board full (%d/%d)", g.board.Current(), g.board.Lines())
	}
	g.drawText(g.centered(runewidth.StringWidth(label)), y-2, label, styleDefault)

	x := g.centered(rowWidth())
	for i, c := range rowCells(g.state) {
		style := styleEmpty
		switch {
		case i == g.state.Cursor && g.cursorError:
			style = styleError
		case i == g.state.Cursor:
			style = styleCursor
		case i < g.state.Cursor:
			style = styleLetter
		}
		g.screen.SetContent(x, y, c, nil, style)
		x += 1 + cellGap
	}

	// Full row: the cursor sits past the last cell, flash the whole row instead
	if g.state.Full() && g.cursorError {
		x = g.centered(rowWidth())
		for _, c := range rowCells(g.state) {
			g.screen.SetContent(x, y, c, nil, styleError)
			x += 1 + cellGap
		}
	}

	g.drawText(g.centered(runewidth.StringWidth(hintText)), y+2, hintText, styleHint)
	g.screen.Show()
}

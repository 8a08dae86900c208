package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines no wider than width display columns.
// Lines that already fit keep their spacing. Words longer than width are
// truncated.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if runewidth.StringWidth(para) <= width {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := ""
		for _, w := range words {
			if runewidth.StringWidth(w) > width {
				w = runewidth.Truncate(w, width, "")
			}
			switch {
			case cur == "":
				cur = w
			case runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) <= width:
				cur += " " + w
			default:
				lines = append(lines, cur)
				cur = w
			}
		}
		lines = append(lines, cur)
	}
	return lines
}

// DrawPanel clears the screen and draws a titled page of text with a footer.
// Lines that do not fit are dropped from the bottom.
func (r *Renderer) DrawPanel(title string, body []string, footer string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.drawText(1, 0, "===== "+title+" =====", titleStyle, 0)
	y := 2
	for _, para := range body {
		for _, line := range Wrap(para, w-2) {
			if y >= h-2 {
				break
			}
			r.drawText(1, y, line, bodyStyle, 0)
			y++
		}
	}
	if footer != "" {
		r.drawText(1, h-1, footer, tcell.StyleDefault.Foreground(tcell.ColorGray), 0)
	}
	r.screen.Show()
}

// DrawPrompt draws a single-line input prompt with a cursor on the last row.
func (r *Renderer) DrawPrompt(label string, buf []rune) {
	w, h := r.screen.Size()
	y := h - 1
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	r.drawText(0, y, label+string(buf)+"_", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true), 0)
	r.screen.Show()
}

// boxRunes are the corners and edges of a dialog frame, clockwise from the
// top-left corner.
var boxRunes = [...]rune{'┌', '─', '┐', '│', '┘', '─', '└', '│'}

// DrawDialog draws text in a framed one-line box centered over whatever is
// already on screen.
func (r *Renderer) DrawDialog(text string) {
	sw, sh := r.screen.Size()
	inner := runewidth.StringWidth(text) + 2
	left, top := (sw-inner-2)/2, (sh-3)/2
	right, bottom := left+inner+1, top+2
	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for x := left; x <= right; x++ {
		for y := top; y <= bottom; y++ {
			ch := ' '
			switch {
			case y == top && x == left:
				ch = boxRunes[0]
			case y == top && x == right:
				ch = boxRunes[2]
			case y == bottom && x == right:
				ch = boxRunes[4]
			case y == bottom && x == left:
				ch = boxRunes[6]
			case y == top:
				ch = boxRunes[1]
			case y == bottom:
				ch = boxRunes[5]
			case x == left || x == right:
				ch = boxRunes[3]
			}
			r.screen.SetContent(x, y, ch, nil, frame)
		}
	}
	r.drawText(left+2, top+1, text, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true), inner-1)
	r.screen.Show()
}

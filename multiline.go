package eezdraw

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/style"
)

// Measurer reports the pixel width of a string.
type Measurer interface {
	Measure(s string) int
}

// TextRun is one word of wrapped text with its top-left position.
type TextRun struct {
	Text string
	X, Y int
}

// WrapText lays out text greedily inside box. Words are separated by
// spaces; a word that would overflow the right edge moves to a new line.
// A newline starts a new paragraph, which adds 20% of the line height as
// extra spacing. Lines are 90% of fontHeight apart. Layout stops silently
// once a line would not fit vertically.
func WrapText(text string, m Measurer, fontHeight int, box image.Rectangle) []TextRun {
	if fontHeight <= 0 || box.Empty() {
		return nil
	}
	lineHeight := fontHeight * 9 / 10
	paragraphSpacing := lineHeight / 5
	spaceWidth := m.Measure(" ")

	var runs []TextRun
	x, y := box.Min.X, box.Min.Y
	fits := func() bool { return y+fontHeight <= box.Max.Y }

	for i := 0; i < len(text); {
		switch text[i] {
		case '\n':
			x = box.Min.X
			y += lineHeight + paragraphSpacing
			i++
			continue
		case ' ':
			x += spaceWidth
			i++
			continue
		}

		j := i
		for j < len(text) && text[j] != ' ' && text[j] != '\n' {
			j++
		}
		word := text[i:j]
		i = j

		width := m.Measure(word)
		if x > box.Min.X && x+width > box.Max.X {
			x = box.Min.X
			y += lineHeight
		}
		if !fits() {
			break
		}
		runs = append(runs, TextRun{Text: word, X: x, Y: y})
		x += width
	}
	return runs
}

// DrawMultilineText renders word-wrapped text inside the padded content
// box. Text that does not fit vertically is dropped.
func (r *Renderer) DrawMultilineText(text string, w, h int, s *style.Style, inverse bool) (*gg.Pixmap, error) {
	res, id, err := r.prepare(s)
	if err != nil {
		return nil, err
	}

	key := cacheKey(id, w, h, inverse, text)
	return r.cache.GetOrRender(nsMultiline, key, w, h, func(c *Canvas) {
		frame := NewFrame(w, h, res)
		fg := frame.paint(c, res, inverse, "")
		if res.Font == nil {
			return
		}
		box := padded(frame.Inner, res)
		for _, run := range WrapText(unescapeText(text), res.Font, res.Font.Height(), box) {
			c.Text(run.Text, run.X, run.Y, res.Font, fg)
		}
	}), nil
}

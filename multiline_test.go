package eezdraw

import (
	"image"
	"testing"
)

func TestWrapTextParagraphs(t *testing.T) {
	// 5px per byte: "hello world" is 55px and does not fit in 40px.
	m := fixedMeasurer(5)
	const fontHeight = 10
	box := image.Rect(0, 0, 40, 100)

	runs := WrapText("hello world\nbye", m, fontHeight, box)

	lineHeight := 9
	paragraph := 1
	want := []TextRun{
		{Text: "hello", X: 0, Y: 0},
		{Text: "world", X: 0, Y: lineHeight},
		{Text: "bye", X: 0, Y: 2*lineHeight + paragraph},
	}
	if len(runs) != len(want) {
		t.Fatalf("expected %d runs, got %d: %+v", len(want), len(runs), runs)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestWrapTextSameLine(t *testing.T) {
	runs := WrapText("a bc", fixedMeasurer(2), 10, image.Rect(3, 4, 100, 50))
	want := []TextRun{
		{Text: "a", X: 3, Y: 4},
		{Text: "bc", X: 3 + 2 + 2, Y: 4},
	}
	if len(runs) != 2 || runs[0] != want[0] || runs[1] != want[1] {
		t.Errorf("got %+v, want %+v", runs, want)
	}
}

func TestWrapTextTruncatesVertically(t *testing.T) {
	// Each word needs its own line; only two lines fit in 20px.
	runs := WrapText("one two three four", fixedMeasurer(10), 10, image.Rect(0, 0, 40, 20))
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d: %+v", len(runs), runs)
	}
	if runs[1].Text != "two" {
		t.Errorf("expected second run 'two', got %q", runs[1].Text)
	}
}

func TestWrapTextOverlongWord(t *testing.T) {
	runs := WrapText("abcdefghij", fixedMeasurer(10), 10, image.Rect(0, 0, 30, 30))
	if len(runs) != 1 || runs[0].X != 0 || runs[0].Y != 0 {
		t.Errorf("expected the word on the first line, got %+v", runs)
	}
}

func TestWrapTextEmpty(t *testing.T) {
	if runs := WrapText("x", fixedMeasurer(1), 0, image.Rect(0, 0, 10, 10)); runs != nil {
		t.Errorf("expected no runs for zero font height, got %+v", runs)
	}
	if runs := WrapText("x", fixedMeasurer(1), 5, image.Rectangle{}); runs != nil {
		t.Errorf("expected no runs for empty box, got %+v", runs)
	}
}

func TestDrawMultilineText(t *testing.T) {
	lib := newTestLibrary(t)
	r := NewRenderer(lib)

	a, err := r.DrawMultilineText(`first line\nsecond`, 80, 40, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := r.DrawMultilineText(`first line\nsecond`, 80, 40, nil, false)
	if a == nil || a != b {
		t.Error("expected a cached pixmap")
	}
}

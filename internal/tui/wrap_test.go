package tui

import (
	"strings"
	"testing"
)

func plainCells(s string) []cell {
	runes := []rune(s)
	cells := make([]cell, len(runes))
	for i, r := range runes {
		cells[i] = cell{text: string(r), width: 1, space: r == ' '}
	}
	return cells
}

func TestStyleCellsMarksTypedRunes(t *testing.T) {
	cells := styleCells([]rune("ab"), []rune("a"))
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if cells[0].text != correctStyle.Render("a") {
		t.Fatalf("expected correct style for typed rune")
	}
	if cells[1].text != cursorStyle.Render("b") {
		t.Fatalf("expected cursor style for next rune")
	}
}

func TestStyleCellsKeepsTargetOnMistype(t *testing.T) {
	cells := styleCells([]rune("ab"), []rune("ax"))
	if cells[1].text != incorrectStyle.Render("b") {
		t.Fatalf("expected the target rune in incorrect style")
	}
}

func TestStyleCellsWrongSpaceDot(t *testing.T) {
	cells := styleCells([]rune("a b"), []rune("ax"))
	if cells[1].text != incorrectStyle.Render("•") {
		t.Fatalf("expected dot for wrong space, got %q", cells[1].text)
	}
	if !cells[1].space {
		t.Fatalf("wrong space should still break lines")
	}
}

func TestCurrentWord(t *testing.T) {
	target := []rune("one two")
	if w := currentWord(target, 1); w != (wordRange{start: 0, end: 3}) {
		t.Fatalf("expected first word, got %+v", w)
	}
	if w := currentWord(target, 3); w != (wordRange{start: 4, end: 7}) {
		t.Fatalf("expected next word from space, got %+v", w)
	}
	if w := currentWord(target, 7); w != (wordRange{}) {
		t.Fatalf("expected no word past the end, got %+v", w)
	}
}

func TestWrapCellsBreaksBetweenWords(t *testing.T) {
	got := wrapCells(plainCells("one two three"), 7)
	if got != "one two \nthree" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapCellsSplitsLongWords(t *testing.T) {
	got := wrapCells(plainCells("abcdefgh"), 3)
	if got != "abc\ndef\ngh" {
		t.Fatalf("unexpected wrap: %q", got)
	}
	if lines := strings.Count(wrapCells(plainCells("a b"), 0), "\n"); lines != 0 {
		t.Fatalf("zero width should not wrap")
	}
}

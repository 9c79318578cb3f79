package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const wrongSpaceRune = '•'

type cell struct {
	text  string
	width int
	space bool
}

type wordRange struct {
	start int
	end   int
}

type token struct {
	word   []cell
	spaces []cell
}

// styleCells renders each target rune against what has been typed so far.
// The cursor sits at len(input).
func styleCells(target, input []rune) []cell {
	cursor := len(input)
	word := currentWord(target, cursor)
	cells := make([]cell, len(target))
	for i, want := range target {
		shown, style := want, pendingStyle
		switch {
		case i < len(input) && want == ' ' && input[i] != ' ':
			shown, style = wrongSpaceRune, incorrectStyle
		case i < len(input) && input[i] == want:
			style = correctStyle
		case i < len(input):
			style = incorrectStyle
		case i == cursor:
			style = cursorStyle
		case want != ' ' && i >= word.start && i < word.end:
			style = currentWordStyle
		}
		cells[i] = cell{
			text:  style.Render(string(shown)),
			width: runewidth.RuneWidth(shown),
			space: want == ' ',
		}
	}
	return cells
}

// currentWord finds the word under the cursor, or the next one when the
// cursor rests on a space.
func currentWord(target []rune, cursor int) wordRange {
	start := cursor
	for start < len(target) && target[start] == ' ' {
		start++
	}
	if start >= len(target) {
		return wordRange{}
	}
	for start > 0 && target[start-1] != ' ' {
		start--
	}
	end := start
	for end < len(target) && target[end] != ' ' {
		end++
	}
	return wordRange{start: start, end: end}
}

func tokens(cells []cell) []token {
	var out []token
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && !cells[j].space {
			j++
		}
		k := j
		for k < len(cells) && cells[k].space {
			k++
		}
		out = append(out, token{word: cells[i:j], spaces: cells[j:k]})
		i = k
	}
	return out
}

// wrapCells breaks lines between words. Words wider than the line are split.
func wrapCells(cells []cell, width int) string {
	if width <= 0 {
		return joinCells(cells)
	}
	var lines []string
	var line []cell
	lineWidth := 0
	flush := func() {
		lines = append(lines, joinCells(line))
		line, lineWidth = nil, 0
	}
	for _, tok := range tokens(cells) {
		if lineWidth > 0 && lineWidth+widthOf(tok.word) > width {
			flush()
		}
		for _, c := range tok.word {
			if lineWidth > 0 && lineWidth+c.width > width {
				flush()
			}
			line = append(line, c)
			lineWidth += c.width
		}
		line = append(line, tok.spaces...)
		lineWidth += widthOf(tok.spaces)
	}
	if len(line) > 0 {
		flush()
	}
	return strings.Join(lines, "\n")
}

func joinCells(cells []cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.text)
	}
	return b.String()
}

func widthOf(cells []cell) int {
	total := 0
	for _, c := range cells {
		total += c.width
	}
	return total
}

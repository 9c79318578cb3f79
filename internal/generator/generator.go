// Package generator picks and builds practice texts.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Texts are the built-in practice paragraphs.
var Texts = []string{
	"The quick brown fox jumps over the lazy dog. This pangram contains every letter of the alphabet at least once.",
	"Technology has revolutionized the way we communicate, work, and live our daily lives in the modern world.",
	"Learning to type efficiently is an essential skill that can significantly improve your productivity and career prospects.",
	"Practice makes perfect when it comes to developing muscle memory and achieving consistent typing accuracy.",
	"The art of touch typing involves training your fingers to find the correct keys without looking at the keyboard.",
	"Professional typists can achieve speeds of over 100 words per minute while maintaining high accuracy rates.",
	"Regular practice sessions help build endurance and maintain consistent performance over extended periods of time.",
	"Proper posture and ergonomic setup are crucial for preventing strain and injury during long typing sessions.",
}

// Generator produces randomized typing text.
type Generator struct {
	rnd   *rand.Rand
	texts []string
}

// New returns a Generator over texts seeded with the current time. An empty
// texts slice selects the built-in paragraphs.
func New(texts []string) *Generator {
	return NewWithRand(texts, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand is New with an explicit random source.
func NewWithRand(texts []string, rnd *rand.Rand) *Generator {
	if len(texts) == 0 {
		texts = Texts
	}
	return &Generator{rnd: rnd, texts: texts}
}

// First returns the opening paragraph.
func (g *Generator) First() string {
	return g.texts[0]
}

// Random returns any paragraph.
func (g *Generator) Random() string {
	return g.texts[g.rnd.Intn(len(g.texts))]
}

// Shuffle returns a paragraph other than current when one exists.
func (g *Generator) Shuffle(current string) string {
	if len(g.texts) < 2 {
		return g.texts[0]
	}
	for {
		next := g.Random()
		if next != current {
			return next
		}
	}
}

// Word returns one random word from words.
func (g *Generator) Word(words []string) string {
	return words[g.rnd.Intn(len(words))]
}

// Drill builds a text of count random words and applies caps and
// punctuation rules.
func (g *Generator) Drill(words []string, count int, capsPct, punctPct float64, punctSet []rune) string {
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := g.Word(words)
		word = applyCaps(g.rnd, word, capsPct)
		word = applyPunct(g.rnd, word, punctPct, punctSet)
		result = append(result, word)
	}
	return strings.Join(result, " ")
}

// Custom normalizes user supplied text; ok is false when nothing remains.
func Custom(text string) (string, bool) {
	text = strings.Join(strings.Fields(text), " ")
	return text, text != ""
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}

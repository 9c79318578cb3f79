// Package scoring computes typing speed and accuracy.
package scoring

import "math"

// CharsPerWord is the standard word length used for WPM.
const CharsPerWord = 5

// Accuracy returns the percentage of input runes matching the target at the
// same position. Empty input scores 100. Runes past the end of target count
// as incorrect.
func Accuracy(target, input string) int {
	in := []rune(input)
	if len(in) == 0 {
		return 100
	}
	correct := correctCount([]rune(target), in)
	return roundHalfUp(100 * float64(correct) / float64(len(in)))
}

// Errors returns the number of input runes that differ from the target.
func Errors(target, input string) int {
	in := []rune(input)
	return len(in) - correctCount([]rune(target), in)
}

// WPM converts typed characters and elapsed seconds to words per minute.
func WPM(chars int, elapsedSeconds float64) int {
	if elapsedSeconds <= 0 || chars <= 0 {
		return 0
	}
	words := float64(chars) / CharsPerWord
	return roundHalfUp(words / (elapsedSeconds / 60))
}

// WPMFor is WPM over the rune length of input.
func WPMFor(input string, elapsedSeconds float64) int {
	return WPM(len([]rune(input)), elapsedSeconds)
}

// IsComplete reports whether input has reached the full target length.
func IsComplete(target, input string) bool {
	n := len([]rune(input))
	return n > 0 && n == len([]rune(target))
}

func correctCount(target, input []rune) int {
	correct := 0
	for i, r := range input {
		if i < len(target) && target[i] == r {
			correct++
		}
	}
	return correct
}

// roundHalfUp matches the rounding of stored historical values.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Round rounds a non-negative value half up.
func Round(v float64) int {
	return roundHalfUp(v)
}

package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterGameWords lower-cases words and keeps unique ASCII letter words.
func FilterGameWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(w)
		if !asciiLetters(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		kept = append(kept, w)
	}
	return kept
}

// Filter keeps the words accepted by keep.
func Filter(words []string, keep FilterFunc) []string {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			kept = append(kept, w)
		}
	}
	return kept
}

// MaxLength returns a filter that rejects words longer than n runes.
func MaxLength(n int) FilterFunc {
	return func(w string) bool { return len([]rune(w)) <= n }
}

func asciiLetters(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

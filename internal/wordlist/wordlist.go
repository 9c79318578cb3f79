// Package wordlist loads game vocabularies and practice texts from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	var words []string
	err := scanLines(path, func(line string) {
		if line != "" {
			words = append(words, line)
		}
	})
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadTexts reads paragraphs separated by blank lines. Lines within a
// paragraph are joined with single spaces.
func LoadTexts(path string) ([]string, error) {
	var (
		texts []string
		cur   []string
	)
	flush := func() {
		if len(cur) > 0 {
			texts = append(texts, strings.Join(cur, " "))
			cur = nil
		}
	}
	err := scanLines(path, func(line string) {
		if line == "" {
			flush()
			return
		}
		cur = append(cur, line)
	})
	if err != nil {
		return nil, err
	}
	flush()
	if len(texts) == 0 {
		return nil, fmt.Errorf("text file is empty")
	}
	return texts, nil
}

func scanLines(path string, fn func(string)) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fn(strings.TrimSpace(scanner.Text()))
	}
	return scanner.Err()
}

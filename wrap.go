package argbind

import (
	"strings"
	"unicode/utf8"
)

// wrapText breaks the given text into lines of at most "width" characters, breaking at whitespace. Existing line
// breaks are kept, and a word longer than the width is never split, so it occupies a line of its own. A width of
// zero or less disables wrapping.
func wrapText(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if width <= 0 {
			lines = append(lines, paragraph)
			continue
		}

		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		lineLen := utf8.RuneCountInString(line)
		for _, word := range words[1:] {
			wordLen := utf8.RuneCountInString(word)
			if lineLen+1+wordLen > width {
				lines = append(lines, line)
				line, lineLen = word, wordLen
			} else {
				line += " " + word
				lineLen += 1 + wordLen
			}
		}
		lines = append(lines, line)
	}
	return lines
}

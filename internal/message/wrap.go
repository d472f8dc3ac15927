package message

import "strings"

// DefaultWidth is the column limit merge commit bodies are wrapped to.
const DefaultWidth = 72

// WrapText word-wraps text to the given width, passing fenced code
// blocks through verbatim. A line whose trimmed content starts with a
// triple backtick toggles the fence state and is itself emitted
// unmodified; an unterminated fence leaves the remainder of the text
// unwrapped.
func WrapText(text string, width int) string {
	lines := strings.Split(text, "\n")

	var wrapped []string
	inCodeBlock := false

	for _, line := range lines {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), "```"):
			inCodeBlock = !inCodeBlock
			wrapped = append(wrapped, line)
		case inCodeBlock:
			wrapped = append(wrapped, line)
		default:
			wrapped = append(wrapped, wrapLine(line, width)...)
		}
	}

	return strings.Join(wrapped, "\n")
}

// wrapLine greedily wraps a single line at whitespace, never mid-word.
// Whitespace runs collapse to single spaces; a word longer than the
// width gets a line of its own. Blank lines wrap to nothing.
func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}

	var out []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			out = append(out, current)
			current = word
		}
	}

	return append(out, current)
}

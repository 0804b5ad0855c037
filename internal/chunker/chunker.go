package chunker

import "strings"

// DefaultMaxChars is the chunk size bound applied when none is configured.
const DefaultMaxChars = 3000

// Split breaks text into ordered chunks along line boundaries. Lines are
// accumulated greedily: a line that would push the running character total
// past maxChars closes the current chunk and starts the next one. A single
// line longer than maxChars still becomes one (oversized) chunk, since the
// bound is checked before appending, never mid-line.
//
// Empty input yields a single empty chunk; joining every chunk's lines back
// together reproduces the original line sequence exactly.
func Split(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var chunks []string
	var current []string
	currentLen := 0

	for _, line := range strings.Split(text, "\n") {
		if currentLen+len(line) > maxChars && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = []string{line}
			currentLen = len(line)
			continue
		}
		current = append(current, line)
		currentLen += len(line)
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}

	return chunks
}

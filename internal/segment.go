package segment

import "strings"

// EmbedFieldLimit is the Discord embed field value ceiling.
const EmbedFieldLimit = 1024

// Split packs the lines of text into ordered chunks of at most maxLen
// characters. Lines are never broken apart: a chunk grows line by line and
// closes when the next line (plus its joining newline) would push it past
// maxLen. A single line longer than maxLen becomes its own oversized chunk;
// downstream delivery rejects it rather than this function splitting it.
//
// Joining the returned chunks with "\n" reproduces the input exactly.
func Split(text string, maxLen int) []string {
	if text == "" {
		return nil
	}

	var chunks []string
	var current []string
	length := 0

	for _, line := range strings.Split(text, "\n") {
		if len(current) > 0 && length+1+len(line) > maxLen {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = nil
			length = 0
		}
		if len(current) > 0 {
			length++
		}
		current = append(current, line)
		length += len(line)
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}

	return chunks
}

package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShortTextSingleChunk(t *testing.T) {
	chunks := Split("hello\nworld", 1024)
	assert.Equal(t, []string{"hello\nworld"}, chunks)
}

func TestSplitEmptyText(t *testing.T) {
	assert.Empty(t, Split("", 1024))
}

func TestSplitThreeLongLines(t *testing.T) {
	lines := []string{
		strings.Repeat("a", 900),
		strings.Repeat("b", 900),
		strings.Repeat("c", 800),
	}
	text := strings.Join(lines, "\n")

	chunks := Split(text, EmbedFieldLimit)

	require.Len(t, chunks, 3)
	for i, chunk := range chunks {
		assert.Equal(t, lines[i], chunk)
		assert.LessOrEqual(t, len(chunk), EmbedFieldLimit)
	}
}

func TestSplitRoundTrip(t *testing.T) {
	texts := []string{
		"one line",
		"a\nb\nc",
		"a\n\nb",
		strings.Repeat("x", 1024) + "\n\nafter a blank line",
		strings.Repeat(strings.Repeat("y", 100)+"\n", 40),
		"trailing newline\n",
	}
	for _, text := range texts {
		chunks := Split(text, 128)
		assert.Equal(t, text, strings.Join(chunks, "\n"))
	}
}

func TestSplitRespectsLimitWithJoiner(t *testing.T) {
	// Two 512-char lines plus the joining newline exceed 1024, so they
	// must not share a chunk.
	text := strings.Repeat("a", 512) + "\n" + strings.Repeat("b", 512)

	chunks := Split(text, 1024)

	require.Len(t, chunks, 2)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 1024)
	}
}

func TestSplitOversizedLinePassesThrough(t *testing.T) {
	long := strings.Repeat("z", 1500)
	chunks := Split("short\n"+long+"\nshort", 1024)

	require.Len(t, chunks, 3)
	assert.Equal(t, "short", chunks[0])
	assert.Equal(t, long, chunks[1])
	assert.Equal(t, "short", chunks[2])
}

func TestSplitDeterministic(t *testing.T) {
	text := strings.Repeat("some line of text\n", 200)
	first := Split(text, 1024)
	second := Split(text, 1024)
	assert.Equal(t, first, second)
}

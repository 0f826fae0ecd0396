package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "", TruncateText("anything", 0))

	long := strings.Repeat("a", 300)
	got := TruncateText(long, MaxFieldLen)
	assert.True(t, strings.HasSuffix(got, "...(truncated)"))
	assert.Equal(t, MaxFieldLen, len(got)-len("...(truncated)"))
}

func TestTruncateTextMultibyte(t *testing.T) {
	// Cut on rune boundaries, not bytes
	got := TruncateText("héllo wörld", 5)
	assert.Equal(t, "héllo...(truncated)", got)
}

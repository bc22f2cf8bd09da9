package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "onde está", normalize("  Onde Está  "))
	assert.Equal(t, "", normalize("   "))
}

func TestMatchesTitle_Bidirectional(t *testing.T) {
	assert.True(t, matchesTitle("certidão", "Certidão de nascimento"))
	assert.True(t, matchesTitle("onde guardei a certidão de nascimento", "Certidão de nascimento"))
	assert.False(t, matchesTitle("vacina", "Certidão de nascimento"))

	// Empty titles never match as a substring of the query.
	assert.False(t, matchesTitle("qualquer", ""))
	assert.True(t, matchesTitle("", ""))
}

func TestTruncate(t *testing.T) {
	short := "curto"
	assert.Equal(t, short, truncate(short))

	long := strings.Repeat("é", 150)
	got := truncate(long)
	assert.Equal(t, strings.Repeat("é", 100)+"...", got)
	assert.Equal(t, 103, len([]rune(got)))
}

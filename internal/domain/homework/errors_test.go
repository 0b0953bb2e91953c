package homework

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestAbbreviate(t *testing.T) {
	assert.Equal(t, "short", Abbreviate("short", 10))
	assert.Equal(t, "", Abbreviate("anything", 0))

	cyrillic := strings.Repeat("ж", 20)
	got := Abbreviate(cyrillic, 10)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 10, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}

// internal/utils/slug_test.go
package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Caregiver in Taipei", "caregiver-in-taipei"},
		{"  Factory Operator  ", "factory-operator"},
		{"Kerja di Jepang: Apa Saja Syaratnya?", "kerja-di-jepang-apa-saja-syaratnya"},
		{"---Already--Dashed---", "already-dashed"},
		{"UPPER case & Symbols!!", "upper-case-symbols"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestSlugify_TruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("word-", 100)
	slug := Slugify(long)
	assert.LessOrEqual(t, len(slug), 200)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

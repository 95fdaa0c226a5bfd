package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Advanced Go Programming", "advanced-go-programming"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"C++ & Rust: Systems!", "c-rust-systems"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple   spaces -- and hyphens", "multiple-spaces-and-hyphens"},
		{"UPPERCASE", "uppercase"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.title), "title %q", tc.title)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Go_Fundamentals", SanitizeFilename("Go Fundamentals"))
	assert.Equal(t, "a_b_c.pdf", SanitizeFilename(`a/b\c.pdf`))
	assert.Equal(t, "plain-name_v1.2.pdf", SanitizeFilename("plain-name_v1.2.pdf"))
}

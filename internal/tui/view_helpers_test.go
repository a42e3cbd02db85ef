package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "hello", max: 10, want: "hello"},
		{name: "exact", in: "hello", max: 5, want: "hello"},
		{name: "cut", in: "hello world", max: 8, want: "hello..."},
		{name: "tiny max", in: "hello", max: 2, want: "he"},
		{name: "collapses whitespace", in: "a\n\tb   c", max: 10, want: "a b c"},
		{name: "unicode", in: "привет мир", max: 6, want: "при..."},
		{name: "no limit", in: "anything", max: 0, want: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"work", "ideas", "work"}, parseTags(" work , #ideas,, work "))
	assert.Equal(t, []string{"a", "a"}, parseTags("a, a"))
	assert.Equal(t, []string{}, parseTags(""))
	assert.NotNil(t, parseTags("  ,  "))
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "#a #b", formatTags([]string{"a", "b"}))
	assert.Equal(t, "", formatTags(nil))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", formatDate(time.Time{}))

	d := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "07 Mar 2026", formatDate(d))
}

func TestRenderPage(t *testing.T) {
	out := renderPage("TITLE", "line one\nline two", "enter: go")

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "  line one\n  line two")
	assert.Contains(t, out, "enter: go")
	assert.True(t, strings.HasSuffix(out, "ctrl+c: quit"))

	assert.Contains(t, renderPage("EMPTY", "  ", ""), "  -\n")
}

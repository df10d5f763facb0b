package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickBest(t *testing.T) {
	t.Run("drops over-long drafts", func(t *testing.T) {
		long := strings.Repeat("x", maxLineLength+1)
		got := pickBest([]string{long, "import os", "def main():"}, nil)
		assert.NotContains(t, got, long)
	})

	t.Run("collapses duplicates", func(t *testing.T) {
		got := pickBest([]string{"import os", "import os", "def main():"}, nil)
		assert.Equal(t, 2, len(got))
	})

	t.Run("keeps at most four", func(t *testing.T) {
		drafts := []string{"a = 1", "b = 2", "c = 3", "d = 4", "e = 5", "f = 6"}
		got := pickBest(drafts, nil)
		assert.Len(t, got, keepBest)
	})

	t.Run("judge scores order the result", func(t *testing.T) {
		drafts := []string{"a = 1", "b = 2", "c = 3"}
		scores := map[string]int{"a = 1": 10, "b = 2": 90, "c = 3": 50}
		got := pickBest(drafts, scores)
		assert.Equal(t, []string{"b = 2", "c = 3", "a = 1"}, got)
	})

	t.Run("well-formed lines outrank broken ones", func(t *testing.T) {
		drafts := []string{"print('unclosed", "print('ok')"}
		scores := map[string]int{"print('unclosed": 10, "print('ok')": 0}
		got := pickBest(drafts, scores)
		assert.Equal(t, "print('ok')", got[0])
	})

	t.Run("equal scores keep draft order", func(t *testing.T) {
		drafts := []string{"x = 1", "y = 2", "z = 3"}
		got := pickBest(drafts, nil)
		assert.Equal(t, drafts, got)
	})
}

func TestLooksWellFormed(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"import os", true},
		{"def main():", true},
		{"    print('hello')", true},
		{"x = [1, 2, 3]", true},
		{"d = {'k': (1, 2)}", true},
		{"total = sum(values)  # running total", true},
		{"", false},
		{"   ", false},
		{"print('unclosed", false},
		{"x = [1, 2", false},
		{"x = (1]", false},
		{"y = 1)", false},
		{"line = 'continues' + \\", false},
		{`s = "escaped \" quote"`, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, looksWellFormed(tc.line), "line: %q", tc.line)
	}
}

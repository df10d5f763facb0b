package generator

import (
	"sort"
	"strings"
)

const (
	maxLineLength   = 95
	wellFormedBoost = 20
	keepBest        = 4
)

// pickBest narrows raw drafts down to the option list a poll is built from:
// over-long drafts are dropped, duplicates collapse to their first
// occurrence, well-formed lines get a score boost and the highest-scored
// four survive. The sort is stable so equal scores keep draft order.
func pickBest(drafts []string, scores map[string]int) []string {
	kept := make([]string, 0, len(drafts))
	seen := make(map[string]struct{}, len(drafts))
	for _, d := range drafts {
		if len(d) > maxLineLength {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		kept = append(kept, d)
	}

	type scored struct {
		text  string
		score int
	}
	ranked := make([]scored, 0, len(kept))
	for _, d := range kept {
		score := scores[d]
		if looksWellFormed(d) {
			score += wellFormedBoost
		}
		ranked = append(ranked, scored{text: d, score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > keepBest {
		ranked = ranked[:keepBest]
	}
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.text)
	}
	return out
}

// looksWellFormed is a cheap structural check on one line: brackets balance,
// quotes close and the line does not end mid-escape. It approximates a real
// parser well enough to rank single lines.
func looksWellFormed(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, "\\") {
		return false
	}

	var stack []rune
	var quote rune
	escaped := false
	for _, r := range trimmed {
		if escaped {
			escaped = false
			continue
		}
		if quote != 0 {
			switch r {
			case '\\':
				escaped = true
			case quote:
				quote = 0
			}
			continue
		}
		switch r {
		case '\'', '"':
			quote = r
		case '#':
			// Comment: the rest of the line is free-form.
			return quote == 0 && len(stack) == 0
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 {
				return false
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if (r == ')' && open != '(') || (r == ']' && open != '[') || (r == '}' && open != '{') {
				return false
			}
		}
	}
	return quote == 0 && len(stack) == 0 && !escaped
}

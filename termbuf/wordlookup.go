package termbuf

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"smudgy/styledline"
)

// RecentWordsWithPrefix ranks the distinct whitespace-delimited words
// seen across the buffer's retained lines that start with prefix, most recently
// seen first among equally-ranked matches, returning at most limit
// results. Used to drive tab completion against recent scrollback (e.g.
// completing a half-typed room exit or player name from what has
// actually scrolled by).
func (b *Buffer) RecentWordsWithPrefix(prefix string, limit int) []string {
	if prefix == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]int) // word -> recency rank, lower is newer
	order := make([]string, 0, 64)
	rank := 0
	b.Reverse(func(line styledline.StyledLine, _ bool) bool {
		for _, word := range strings.Fields(line.Text) {
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = rank
			order = append(order, word)
			rank++
		}
		return true
	})

	candidates := make([]string, 0, len(order))
	for _, word := range order {
		if strings.HasPrefix(word, prefix) {
			candidates = append(candidates, word)
		}
	}
	matches := fuzzy.Find(prefix, candidates)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return seen[matches[i].Str] < seen[matches[j].Str]
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	results := make([]string, len(matches))
	for i, m := range matches {
		results[i] = m.Str
	}
	return results
}

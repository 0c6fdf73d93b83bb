package complete

import (
	"sort"
	"strings"

	"github.com/relstor/ptk/document"
	"github.com/relstor/ptk/internal/util"
)

// WordCompleter completes against a fixed vocabulary by prefix match against
// the word immediately before the cursor. Matching is smart-case: a query
// containing an uppercase letter matches case-sensitively, otherwise
// case-insensitively -- the same smart-case rule the fuzzy matcher below
// uses, kept consistent across completers.
type WordCompleter struct {
	Words []string
	Meta  map[string]string
}

// NewWordCompleter builds a WordCompleter over words, sorted for
// deterministic iteration order.
func NewWordCompleter(words ...string) *WordCompleter {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	return &WordCompleter{Words: sorted}
}

func (w *WordCompleter) Complete(doc *document.Document) []document.Completion {
	query, start := wordBeforeCursor(doc)
	if query == "" {
		return nil
	}

	caseSensitive := util.ContainsUpper(query)
	pos := startPosition(start, doc.CursorPosition())

	var out []document.Completion
	for _, word := range w.Words {
		matched := word
		candidate := query
		if !caseSensitive {
			matched = strings.ToLower(word)
			candidate = strings.ToLower(query)
		}
		if !strings.HasPrefix(matched, candidate) {
			continue
		}
		out = append(out, document.Completion{
			Text:          word,
			StartPosition: pos,
			Display:       word,
			DisplayMeta:   w.Meta[word],
		})
	}
	return out
}

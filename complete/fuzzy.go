package complete

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/relstor/ptk/document"
	"github.com/relstor/ptk/internal/util"
)

// FuzzyCompleter completes against a fixed vocabulary using subsequence
// matching: a query "abc" matches any word containing 'a', then 'b', then
// 'c' in order with arbitrary runes between them (equivalent to the regexp
// "a.*b.*c.*"). Matching is smart-case, same as WordCompleter. Candidates
// are ranked by match span length, shortest (tightest) span first.
type FuzzyCompleter struct {
	Words []string
	Meta  map[string]string
}

// NewFuzzyCompleter builds a FuzzyCompleter over words.
func NewFuzzyCompleter(words ...string) *FuzzyCompleter {
	return &FuzzyCompleter{Words: append([]string(nil), words...)}
}

type fuzzyMatch struct {
	word string
	span int
}

func (f *FuzzyCompleter) Complete(doc *document.Document) []document.Completion {
	query, start := wordBeforeCursor(doc)
	if query == "" {
		return nil
	}
	pos := startPosition(start, doc.CursorPosition())

	var matches []fuzzyMatch
	for _, word := range f.Words {
		span, ok := fuzzyMatchSpan(word, query)
		if !ok {
			continue
		}
		matches = append(matches, fuzzyMatch{word: word, span: span})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].span < matches[j].span
	})

	out := make([]document.Completion, 0, len(matches))
	for _, m := range matches {
		out = append(out, document.Completion{
			Text:          m.word,
			StartPosition: pos,
			Display:       m.word,
			DisplayMeta:   f.Meta[m.word],
		})
	}
	return out
}

// fuzzyMatchSpan reports whether every rune of query occurs in word, in
// order, and returns the number of bytes spanned from the first match to
// the last (a tighter span ranks as a better match).
func fuzzyMatchSpan(word, query string) (span int, ok bool) {
	hasUpper := util.ContainsUpper(query)
	txt := word
	base := 0
	firstMatch := -1
	lastEnd := 0

	for len(query) > 0 {
		r, n := utf8.DecodeRuneInString(query)
		if r == utf8.RuneError {
			return 0, false
		}
		query = query[n:]

		var i int
		if hasUpper {
			i = strings.IndexRune(txt, r)
		} else {
			i = strings.IndexFunc(txt, util.CaseInsensitiveIndexFunc(r))
		}
		if i == -1 {
			return 0, false
		}

		matchStart := base + i
		if firstMatch == -1 {
			firstMatch = matchStart
		}
		lastEnd = matchStart + n

		txt = txt[i+n:]
		base = lastEnd
	}
	return lastEnd - firstMatch, true
}

// Package complete generates document.Completion candidates for
// Buffer.StartCompletion. Completer implementations are adapted from the
// line-filtering matchers of a fuzzy-finder: prefix and subsequence
// matching, retargeted from filtering a list of lines to
// filtering a vocabulary of completion words against the text immediately
// before the cursor.
package complete

import (
	"unicode/utf8"

	"github.com/relstor/ptk/document"
)

// Completer produces completion candidates for the word currently being
// typed at doc's cursor position.
type Completer interface {
	Complete(doc *document.Document) []document.Completion
}

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(doc *document.Document) []document.Completion

func (f CompleterFunc) Complete(doc *document.Document) []document.Completion {
	return f(doc)
}

// wordBeforeCursor returns the text from doc.FindStartOfPreviousWord up to
// the cursor (including any non-word runes between that word and the
// cursor) along with the offset it starts at.
func wordBeforeCursor(doc *document.Document) (word string, start int) {
	start = doc.FindStartOfPreviousWord()
	runes := []rune(doc.Text())
	cur := doc.CursorPosition()
	if start < 0 || start > cur || cur > len(runes) {
		return "", cur
	}
	return string(runes[start:cur]), start
}

func startPosition(wordStart, cursor int) int {
	return wordStart - cursor
}

func utf8Len(s string) int {
	return utf8.RuneCountInString(s)
}

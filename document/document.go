// Package document implements the immutable Document snapshot and the
// mutable Buffer that owns it. Document is grounded on
// peco's Caret (cursor position bookkeeping, caret.go) generalized from a
// single scalar position into a full text+cursor+selection snapshot, and on
// peco's line.Raw (line/raw.go) for the text-holding conventions (an
// immutable value, built once, read many times).
package document

import (
	"strings"
	"unicode"
)

// Suggestion is the immutable "ghost text" value an AutoSuggest produces,
// held here (rather than in the autosuggest package) so Buffer can store one
// without autosuggest importing document and document importing autosuggest
// back.
type Suggestion struct {
	Text string
}

// SelectionType distinguishes the three selection shapes.
type SelectionType int

const (
	SelectionRange SelectionType = iota
	SelectionLine
	SelectionBlock
)

// Selection anchors a selection to an offset and records its shape.
type Selection struct {
	Anchor int
	Type   SelectionType
}

// Document is an immutable text snapshot with a cursor position and an
// optional selection anchor. All navigation methods return new offsets;
// none of them mutate the Document.
//
// Invariant: 0 <= CursorPosition <= len(runes). Selection.Anchor (when
// present) is bounded identically.
type Document struct {
	text      string
	runes     []rune
	cursor    int
	selection *Selection
}

// New constructs a Document, clamping cursorPosition into [0, len(text)].
func New(text string, cursorPosition int) *Document {
	runes := []rune(text)
	return &Document{
		text:   text,
		runes:  runes,
		cursor: clamp(cursorPosition, 0, len(runes)),
	}
}

// WithSelection returns a copy of d with the given selection installed.
// Passing a nil sel clears the selection.
func (d *Document) WithSelection(sel *Selection) *Document {
	nd := *d
	if sel != nil {
		clamped := *sel
		clamped.Anchor = clamp(clamped.Anchor, 0, len(d.runes))
		nd.selection = &clamped
	} else {
		nd.selection = nil
	}
	return &nd
}

// WithCursorPosition returns a copy of d with the cursor moved to pos
// (clamped into bounds).
func (d *Document) WithCursorPosition(pos int) *Document {
	nd := *d
	nd.cursor = clamp(pos, 0, len(d.runes))
	return &nd
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Text returns the full document text.
func (d *Document) Text() string { return d.text }

// CursorPosition returns the 0-based code point offset of the cursor.
func (d *Document) CursorPosition() int { return d.cursor }

// Selection returns the active selection, or nil if there is none.
func (d *Document) Selection() *Selection { return d.selection }

// Len returns the number of code points in the document.
func (d *Document) Len() int { return len(d.runes) }

// CharBeforeCursor returns the rune immediately before the cursor, or 0 if
// the cursor is at the start.
func (d *Document) CharBeforeCursor() rune {
	if d.cursor == 0 {
		return 0
	}
	return d.runes[d.cursor-1]
}

// CharAfterCursor returns the rune immediately after the cursor, or 0 if the
// cursor is at the end.
func (d *Document) CharAfterCursor() rune {
	if d.cursor >= len(d.runes) {
		return 0
	}
	return d.runes[d.cursor]
}

// TextBeforeCursor returns the slice of text preceding the cursor.
func (d *Document) TextBeforeCursor() string {
	return string(d.runes[:d.cursor])
}

// TextAfterCursor returns the slice of text following the cursor.
func (d *Document) TextAfterCursor() string {
	return string(d.runes[d.cursor:])
}

// lineBounds returns [start, end) of the line containing offset, where end
// excludes the trailing '\n' (if any).
func (d *Document) lineBounds(offset int) (int, int) {
	start := offset
	for start > 0 && d.runes[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(d.runes) && d.runes[end] != '\n' {
		end++
	}
	return start, end
}

// CurrentLine returns the text of the line containing the cursor, excluding
// the newline.
func (d *Document) CurrentLine() string {
	s, e := d.lineBounds(d.cursor)
	return string(d.runes[s:e])
}

// CurrentLineBeforeCursor returns the text of the current line up to the
// cursor.
func (d *Document) CurrentLineBeforeCursor() string {
	s, _ := d.lineBounds(d.cursor)
	return string(d.runes[s:d.cursor])
}

// CurrentLineAfterCursor returns the text of the current line after the
// cursor.
func (d *Document) CurrentLineAfterCursor() string {
	_, e := d.lineBounds(d.cursor)
	return string(d.runes[d.cursor:e])
}

// Lines splits the document text into lines (without trailing newlines).
func (d *Document) Lines() []string {
	return strings.Split(d.text, "\n")
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines())
}

// CursorPositionRow returns the 0-based row the cursor is on.
func (d *Document) CursorPositionRow() int {
	row, _ := d.TranslateOffsetToRowCol(d.cursor)
	return row
}

// CursorPositionCol returns the 0-based column the cursor is on.
func (d *Document) CursorPositionCol() int {
	_, col := d.TranslateOffsetToRowCol(d.cursor)
	return col
}

// TranslateOffsetToRowCol converts a code point offset into (row, col),
// both 0-based.
func (d *Document) TranslateOffsetToRowCol(offset int) (row, col int) {
	offset = clamp(offset, 0, len(d.runes))
	for i := 0; i < offset; i++ {
		if d.runes[i] == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}
	return row, col
}

// TranslateRowColToOffset is the inverse of TranslateOffsetToRowCol. col is
// clamped to the actual length of the target row.
func (d *Document) TranslateRowColToOffset(row, col int) int {
	offset := 0
	curRow := 0
	for curRow < row && offset < len(d.runes) {
		if d.runes[offset] == '\n' {
			curRow++
		}
		offset++
	}
	lineStart := offset
	lineEnd := lineStart
	for lineEnd < len(d.runes) && d.runes[lineEnd] != '\n' {
		lineEnd++
	}
	return clamp(lineStart+col, lineStart, lineEnd)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// FindStartOfPreviousWord returns the offset of the start of the word
// before the cursor, or 0 if there is none.
func (d *Document) FindStartOfPreviousWord() int {
	i := d.cursor
	for i > 0 && !isWordRune(d.runes[i-1]) {
		i--
	}
	for i > 0 && isWordRune(d.runes[i-1]) {
		i--
	}
	return i
}

// FindEndOfCurrentWord returns the offset just past the end of the word the
// cursor is on/before, or the document length if there is none.
func (d *Document) FindEndOfCurrentWord() int {
	i := d.cursor
	for i < len(d.runes) && !isWordRune(d.runes[i]) {
		i++
	}
	for i < len(d.runes) && isWordRune(d.runes[i]) {
		i++
	}
	return i
}

// GetCursorUpPosition returns the offset directly above the cursor,
// preserving preferredColumn when given (>=0), else the current column.
func (d *Document) GetCursorUpPosition(count int, preferredColumn int) int {
	row, col := d.TranslateOffsetToRowCol(d.cursor)
	if preferredColumn >= 0 {
		col = preferredColumn
	}
	newRow := row - count
	if newRow < 0 {
		newRow = 0
	}
	return d.TranslateRowColToOffset(newRow, col)
}

// GetCursorDownPosition is the symmetric counterpart of
// GetCursorUpPosition.
func (d *Document) GetCursorDownPosition(count int, preferredColumn int) int {
	row, col := d.TranslateOffsetToRowCol(d.cursor)
	if preferredColumn >= 0 {
		col = preferredColumn
	}
	newRow := row + count
	maxRow := d.LineCount() - 1
	if newRow > maxRow {
		newRow = maxRow
	}
	return d.TranslateRowColToOffset(newRow, col)
}

// SelectionRange returns the [start, end) offsets spanned by the current
// selection relative to the cursor. ok is false if there is no selection.
func (d *Document) SelectionRange() (start, end int, ok bool) {
	if d.selection == nil {
		return 0, 0, false
	}
	start, end = d.selection.Anchor, d.cursor
	if start > end {
		start, end = end, start
	}
	if d.selection.Type == SelectionLine {
		start, _ = d.lineBounds(start)
		_, lineEnd := d.lineBounds(end)
		end = lineEnd
	}
	return start, end, true
}

// SelectedText returns the substring spanned by the active selection, or
// "" if there is none.
func (d *Document) SelectedText() string {
	start, end, ok := d.SelectionRange()
	if !ok {
		return ""
	}
	return string(d.runes[start:end])
}

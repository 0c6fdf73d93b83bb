package document

import (
	"errors"

	"github.com/relstor/ptk/history"
)

// ErrReadOnly is returned by mutating operations on a read-only Buffer.
var ErrReadOnly = errors.New("document: buffer is read-only")

// CompletionPhase is the Buffer's completion state machine phase.
type CompletionPhase int

const (
	Idle CompletionPhase = iota
	Requesting
	Active
	Applying
)

// Validator checks a candidate document text before it is accepted.
// A non-nil error becomes the Buffer's ValidationError.
type Validator func(text string) error

// Buffer is the mutable editing core a Window's BufferControl renders.
// Grounded on peco's Caret (caret.go) generalized from a single
// mutex-guarded scalar position to the full document+history+completion+
// undo state machine this type owns; the observer slices follow the same
// "plain callback list, no generic event bus" shape peco's Caret callers use
// directly rather than routing simple position changes through hub.Hub.
type Buffer struct {
	Name      string
	ReadOnly  bool
	Multiline bool

	doc *Document

	history      history.History
	historyCopy  []string
	historyIndex int // -1 when not navigating history

	undoStack [][]*Document
	undoCap   int

	completion *CompletionState

	validator       Validator
	validationError error

	suggestion *Suggestion

	// preferredColumn tracks the column cursor_up/cursor_down should aim
	// for across multiple vertical moves; -1 means "use the current
	// column".
	preferredColumn int

	onTextChanged           []func(*Buffer)
	onCursorPositionChanged []func(*Buffer)
	onAccept                func(*Buffer) bool
}

// NewBuffer constructs an empty, editable Buffer.
func NewBuffer(name string) *Buffer {
	return &Buffer{
		Name:            name,
		doc:             New("", 0),
		historyIndex:    -1,
		preferredColumn: -1,
		undoCap:         1000,
	}
}

// WithHistory attaches h as this buffer's history source for
// StartHistorySearch/HistoryForward/HistoryBackward. Returns b for chaining.
func (b *Buffer) WithHistory(h history.History) *Buffer {
	b.history = h
	return b
}

// WithValidator installs v, run by ValidateAndHandle.
func (b *Buffer) WithValidator(v Validator) *Buffer {
	b.validator = v
	return b
}

// OnAccept installs the callback ValidateAndHandle invokes once validation
// passes; a false return means "accept request is deferred/blocked" and no
// further action is taken by the buffer itself.
func (b *Buffer) OnAccept(fn func(*Buffer) bool) *Buffer {
	b.onAccept = fn
	return b
}

// OnTextChanged registers an observer invoked synchronously whenever the
// document's text is replaced.
func (b *Buffer) OnTextChanged(fn func(*Buffer)) {
	b.onTextChanged = append(b.onTextChanged, fn)
}

// OnCursorPositionChanged registers an observer invoked synchronously
// whenever the cursor moves.
func (b *Buffer) OnCursorPositionChanged(fn func(*Buffer)) {
	b.onCursorPositionChanged = append(b.onCursorPositionChanged, fn)
}

// Document returns the buffer's current immutable snapshot.
func (b *Buffer) Document() *Document { return b.doc }

// Text is shorthand for Document().Text().
func (b *Buffer) Text() string { return b.doc.Text() }

// ValidationError returns the error set by the last failed
// ValidateAndHandle call, or nil.
func (b *Buffer) ValidationError() error { return b.validationError }

// Suggestion returns the current AutoSuggest result, or nil.
func (b *Buffer) Suggestion() *Suggestion { return b.suggestion }

// SetSuggestion installs s as the current suggestion. Called by the
// application loop once an AutoSuggest's Future resolves.
func (b *Buffer) SetSuggestion(s *Suggestion) { b.suggestion = s }

// CompletionState returns the active completion cycle, or nil if Idle.
func (b *Buffer) CompletionState() *CompletionState { return b.completion }

// setDocument installs nd as the current document. Any edit not issued by
// the completion machinery cancels an in-progress completion cycle.
func (b *Buffer) setDocument(nd *Document, fireEvents bool, fromCompletion bool) {
	old := b.doc
	textChanged := old.Text() != nd.Text()
	cursorChanged := old.CursorPosition() != nd.CursorPosition()

	if !fromCompletion {
		b.completion = nil
	}
	if textChanged {
		b.suggestion = nil
		b.preferredColumn = -1
	}

	b.doc = nd

	if !fireEvents {
		return
	}
	if textChanged {
		for _, fn := range b.onTextChanged {
			fn(b)
		}
	}
	if cursorChanged {
		for _, fn := range b.onCursorPositionChanged {
			fn(b)
		}
	}
}

// SaveToUndoStack pushes the current document (as a 1-element group) onto
// the undo stack.
func (b *Buffer) SaveToUndoStack() {
	b.undoStack = append(b.undoStack, []*Document{b.doc})
	if len(b.undoStack) > b.undoCap {
		b.undoStack = b.undoStack[len(b.undoStack)-b.undoCap:]
	}
}

// Undo restores the document most recently pushed by SaveToUndoStack.
func (b *Buffer) Undo() {
	if len(b.undoStack) == 0 {
		return
	}
	group := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.setDocument(group[len(group)-1], true, false)
}

// InsertText inserts data at the cursor. overwrite replaces the characters
// at/after the cursor instead of shifting them right. moveCursor controls
// whether the cursor advances past the inserted text.
func (b *Buffer) InsertText(data string, overwrite, moveCursor, fireEvents bool) error {
	if b.ReadOnly {
		return ErrReadOnly
	}
	if data == "" {
		return nil
	}

	text := b.doc.Text()
	runes := []rune(text)
	pos := b.doc.CursorPosition()
	inserted := []rune(data)

	var newRunes []rune
	newRunes = append(newRunes, runes[:pos]...)
	newRunes = append(newRunes, inserted...)
	if overwrite {
		skip := pos + len(inserted)
		if skip > len(runes) {
			skip = len(runes)
		}
		newRunes = append(newRunes, runes[skip:]...)
	} else {
		newRunes = append(newRunes, runes[pos:]...)
	}

	newCursor := pos
	if moveCursor {
		newCursor = pos + len(inserted)
	}

	b.setDocument(New(string(newRunes), newCursor), fireEvents, false)
	return nil
}

// Delete removes up to count code points starting at the cursor, returning
// what was actually deleted.
func (b *Buffer) Delete(count int) string {
	if b.ReadOnly || count <= 0 {
		return ""
	}
	text := b.doc.TextAfterCursor()
	runes := []rune(text)
	if count > len(runes) {
		count = len(runes)
	}
	if count == 0 {
		return ""
	}
	deleted := string(runes[:count])

	full := []rune(b.doc.Text())
	pos := b.doc.CursorPosition()
	newRunes := append(append([]rune{}, full[:pos]...), full[pos+count:]...)
	b.setDocument(New(string(newRunes), pos), true, false)
	return deleted
}

// DeleteBeforeCursor removes up to count code points immediately preceding
// the cursor, returning what was actually deleted.
func (b *Buffer) DeleteBeforeCursor(count int) string {
	if b.ReadOnly || count <= 0 {
		return ""
	}
	pos := b.doc.CursorPosition()
	if count > pos {
		count = pos
	}
	if count == 0 {
		return ""
	}
	full := []rune(b.doc.Text())
	deleted := string(full[pos-count : pos])
	newRunes := append(append([]rune{}, full[:pos-count]...), full[pos:]...)
	b.setDocument(New(string(newRunes), pos-count), true, false)
	return deleted
}

// CursorLeft moves the cursor left by count code points, clamped to 0.
func (b *Buffer) CursorLeft(count int) {
	b.preferredColumn = -1
	b.setDocument(b.doc.WithCursorPosition(b.doc.CursorPosition()-count), true, false)
}

// CursorRight moves the cursor right by count code points, clamped to the
// document length.
func (b *Buffer) CursorRight(count int) {
	b.preferredColumn = -1
	b.setDocument(b.doc.WithCursorPosition(b.doc.CursorPosition()+count), true, false)
}

// CursorUp moves the cursor up count lines, preserving the column
// across consecutive calls via preferredColumn.
func (b *Buffer) CursorUp(count int) {
	if b.preferredColumn < 0 {
		b.preferredColumn = b.doc.CursorPositionCol()
	}
	pos := b.doc.GetCursorUpPosition(count, b.preferredColumn)
	nd := b.doc.WithCursorPosition(pos)
	b.doc = nd
	for _, fn := range b.onCursorPositionChanged {
		fn(b)
	}
}

// CursorDown is the symmetric counterpart of CursorUp.
func (b *Buffer) CursorDown(count int) {
	if b.preferredColumn < 0 {
		b.preferredColumn = b.doc.CursorPositionCol()
	}
	pos := b.doc.GetCursorDownPosition(count, b.preferredColumn)
	nd := b.doc.WithCursorPosition(pos)
	b.doc = nd
	for _, fn := range b.onCursorPositionChanged {
		fn(b)
	}
}

// Newline inserts a line break at the cursor. It is a no-op on a
// single-line buffer.
func (b *Buffer) Newline() {
	if !b.Multiline {
		return
	}
	_ = b.InsertText("\n", false, true, true)
}

// InsertLineAbove inserts an empty line above the current line and moves
// the cursor onto it.
func (b *Buffer) InsertLineAbove() {
	if !b.Multiline || b.ReadOnly {
		return
	}
	lineStart, _ := b.doc.lineBounds(b.doc.CursorPosition())
	full := []rune(b.doc.Text())
	newRunes := append(append(append([]rune{}, full[:lineStart]...), '\n'), full[lineStart:]...)
	b.setDocument(New(string(newRunes), lineStart), true, false)
}

// InsertLineBelow inserts an empty line below the current line and moves
// the cursor onto it.
func (b *Buffer) InsertLineBelow() {
	if !b.Multiline || b.ReadOnly {
		return
	}
	_, lineEnd := b.doc.lineBounds(b.doc.CursorPosition())
	full := []rune(b.doc.Text())
	newRunes := append(append(append([]rune{}, full[:lineEnd]...), '\n'), full[lineEnd:]...)
	b.setDocument(New(string(newRunes), lineEnd+1), true, false)
}

// TransformCurrentLine replaces the current line's text with fn's result,
// preserving the cursor's column where possible.
func (b *Buffer) TransformCurrentLine(fn func(string) string) {
	if b.ReadOnly {
		return
	}
	s, e := b.doc.lineBounds(b.doc.CursorPosition())
	full := []rune(b.doc.Text())
	col := b.doc.CursorPosition() - s
	transformed := []rune(fn(string(full[s:e])))

	newRunes := append(append(append([]rune{}, full[:s]...), transformed...), full[e:]...)
	newCol := col
	if newCol > len(transformed) {
		newCol = len(transformed)
	}
	b.setDocument(New(string(newRunes), s+newCol), true, false)
}

// SwapCharactersBeforeCursor swaps the two code points immediately before
// the cursor (a no-op within the first two positions of the document).
func (b *Buffer) SwapCharactersBeforeCursor() {
	if b.ReadOnly {
		return
	}
	pos := b.doc.CursorPosition()
	if pos < 2 {
		return
	}
	full := []rune(b.doc.Text())
	full[pos-1], full[pos-2] = full[pos-2], full[pos-1]
	b.setDocument(New(string(full), pos), true, false)
}

// StartCompletion begins a completion cycle with the supplied candidates,
// computed by the caller (synchronously or via a background task whose
// result is handed back on the application thread). An empty slice leaves
// the buffer Idle.
func (b *Buffer) StartCompletion(completions []Completion) {
	if len(completions) == 0 {
		b.completion = nil
		return
	}
	b.completion = newCompletionState(b.doc, completions)
}

// Phase reports the buffer's current CompletionPhase: Active while a
// completion cycle is in progress, Idle otherwise. It never reports
// Requesting or Applying.
func (b *Buffer) Phase() CompletionPhase {
	if b.completion == nil {
		return Idle
	}
	return Active
}

// applyCompletionAt substitutes the completion at index i into
// OriginalDocument and installs the resulting document, keeping the
// completion cycle active (fromCompletion=true).
func (b *Buffer) applyCompletionAt(i int) {
	cs := b.completion
	c := cs.Completions[i]
	original := cs.OriginalDocument
	pos := original.CursorPosition()
	insertAt := pos + c.StartPosition
	if insertAt < 0 {
		insertAt = 0
	}

	full := []rune(original.Text())
	newRunes := append(append(append([]rune{}, full[:insertAt]...), []rune(c.Text)...), full[pos:]...)
	newCursor := insertAt + len([]rune(c.Text))

	idx := i
	cs.CompleteIndex = &idx
	b.setDocument(New(string(newRunes), newCursor), true, true)
}

// ApplyCompletion commits c as the final edit, ending the completion cycle.
func (b *Buffer) ApplyCompletion(c Completion) {
	cs := b.completion
	if cs == nil {
		return
	}
	for i, cand := range cs.Completions {
		if cand == c {
			b.applyCompletionAt(i)
			break
		}
	}
	b.completion = nil
}

// CompleteNext advances the selected candidate by count, wrapping around
// the candidate list.
func (b *Buffer) CompleteNext(count int) {
	b.stepCompletion(count)
}

// CompletePrevious moves the selected candidate back by count, wrapping
// around the candidate list.
func (b *Buffer) CompletePrevious(count int) {
	b.stepCompletion(-count)
}

func (b *Buffer) stepCompletion(delta int) {
	cs := b.completion
	if cs == nil || len(cs.Completions) == 0 {
		return
	}
	n := len(cs.Completions)
	var next int
	if cs.CompleteIndex == nil {
		if delta >= 0 {
			next = 0
		} else {
			next = n - 1
		}
	} else {
		next = ((*cs.CompleteIndex+delta)%n + n) % n
	}
	b.applyCompletionAt(next)
}

// CancelCompletion ends the cycle and restores OriginalDocument.
func (b *Buffer) CancelCompletion() {
	cs := b.completion
	if cs == nil {
		return
	}
	b.completion = nil
	b.setDocument(cs.OriginalDocument, true, false)
}

// StartHistorySearch begins walking history, snapshotting the current text
// as the working line that reappears once navigation returns to the start.
func (b *Buffer) StartHistorySearch() {
	if b.history == nil {
		return
	}
	entries := b.history.Entries()
	b.historyCopy = append(append([]string{}, entries...), b.doc.Text())
	b.historyIndex = len(b.historyCopy) - 1
}

// HistoryBackward moves to the previous (older) history entry.
func (b *Buffer) HistoryBackward() {
	if b.historyIndex <= 0 {
		return
	}
	b.historyIndex--
	b.setDocument(New(b.historyCopy[b.historyIndex], len([]rune(b.historyCopy[b.historyIndex]))), true, false)
}

// HistoryForward moves to the next (newer) history entry.
func (b *Buffer) HistoryForward() {
	if b.historyIndex < 0 || b.historyIndex >= len(b.historyCopy)-1 {
		return
	}
	b.historyIndex++
	b.setDocument(New(b.historyCopy[b.historyIndex], len([]rune(b.historyCopy[b.historyIndex]))), true, false)
}

// ValidateAndHandle runs the installed Validator (if any). On success it
// records the current text to history (when one is attached) and invokes
// OnAccept, returning its result; a nil OnAccept is treated as accepted. On
// failure it sets ValidationError and returns false.
func (b *Buffer) ValidateAndHandle() bool {
	if b.validator != nil {
		if err := b.validator(b.doc.Text()); err != nil {
			b.validationError = err
			return false
		}
	}
	b.validationError = nil

	if b.history != nil {
		b.history.Append(b.doc.Text())
	}
	if b.onAccept == nil {
		return true
	}
	return b.onAccept(b)
}

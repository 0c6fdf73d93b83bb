package output

// CursorShape selects the terminal cursor's rendered shape.
type CursorShape int

const (
	CursorShapeBlock CursorShape = iota
	CursorShapeBeam
	CursorShapeUnderline
)

// Size is a terminal's dimensions in character cells.
type Size struct {
	Rows, Columns int
}

// Output is the polymorphic terminal output collaborator: it turns styled
// text and cursor/screen commands into whatever the concrete backend's
// medium understands. Grounded on style.go/termbox_style.go's Style
// builder for the styling half; the surrounding cursor/screen/mouse
// method set is new since the prior implementation wrote through
// termbox's own cell buffer rather than hand-written escapes.
type Output interface {
	// Write appends plain text to the output buffer (not yet flushed).
	Write(text string)
	// WriteRaw appends pre-built escape sequences verbatim, bypassing any
	// text-escaping Write performs.
	WriteRaw(escapes string)

	CursorGoto(row, col int)
	CursorUp(n int)
	CursorDown(n int)
	CursorForward(n int)
	CursorBackward(n int)

	EraseScreen()
	EraseEndOfLine()
	EraseDown()

	EnterAlternateScreen()
	QuitAlternateScreen()

	HideCursor()
	ShowCursor()
	SetCursorShape(shape CursorShape)

	ResetAttributes()
	SetAttributes(style Style, depth ColorDepth)

	SetTitle(title string)
	ClearTitle()

	Bell()

	// Flush writes the buffered output to the underlying medium.
	Flush() error

	GetSize() (Size, error)

	EnableMouseSupport()
	DisableMouseSupport()
	EnableBracketedPaste()
	DisableBracketedPaste()
}

package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Sizer reports a terminal's current size; tcell.Tty satisfies this
// (WindowSize), so the POSIX Input backend's tty doubles as the Output
// backend's size source -- one real terminal, one descriptor.
type Sizer interface {
	WindowSize() (tcell.WindowSize, error)
}

// VT100Output is the POSIX/VT100 Output backend: it hand-writes ANSI
// escape sequences to an io.Writer rather than going through a terminfo
// library, at the per-method granularity (cursor_goto/erase/
// alternate-screen/bracketed-paste toggles) that a terminfo-backed screen
// abstraction like tcell's own Screen collapses behind SetContent/Show.
// No prior file here writes raw escapes directly (termbox owned that
// internally); this is new, grounded on termbox_style.go/style.go's Style
// for the SetAttributes half.
type VT100Output struct {
	w     io.Writer
	buf   strings.Builder
	sizer Sizer
}

// NewVT100Output creates a VT100Output writing to w. sizer may be nil, in
// which case GetSize always errors (matching Output.Fileno-less backends
// having no size to report).
func NewVT100Output(w io.Writer, sizer Sizer) *VT100Output {
	return &VT100Output{w: w, sizer: sizer}
}

func (o *VT100Output) Write(text string)    { o.buf.WriteString(text) }
func (o *VT100Output) WriteRaw(esc string)   { o.buf.WriteString(esc) }

func (o *VT100Output) csi(args string, final byte) {
	o.buf.WriteString("\x1b[")
	o.buf.WriteString(args)
	o.buf.WriteByte(final)
}

func (o *VT100Output) CursorGoto(row, col int) {
	o.csi(strconv.Itoa(row+1)+";"+strconv.Itoa(col+1), 'H')
}
func (o *VT100Output) CursorUp(n int)       { o.csiCount(n, 'A') }
func (o *VT100Output) CursorDown(n int)     { o.csiCount(n, 'B') }
func (o *VT100Output) CursorForward(n int)  { o.csiCount(n, 'C') }
func (o *VT100Output) CursorBackward(n int) { o.csiCount(n, 'D') }

func (o *VT100Output) csiCount(n int, final byte) {
	if n <= 0 {
		return
	}
	o.csi(strconv.Itoa(n), final)
}

func (o *VT100Output) EraseScreen()     { o.csi("2", 'J') }
func (o *VT100Output) EraseEndOfLine()  { o.csi("0", 'K') }
func (o *VT100Output) EraseDown()       { o.csi("0", 'J') }

func (o *VT100Output) EnterAlternateScreen() { o.WriteRaw("\x1b[?1049h") }
func (o *VT100Output) QuitAlternateScreen()  { o.WriteRaw("\x1b[?1049l") }

func (o *VT100Output) HideCursor() { o.WriteRaw("\x1b[?25l") }
func (o *VT100Output) ShowCursor() { o.WriteRaw("\x1b[?25h") }

func (o *VT100Output) SetCursorShape(shape CursorShape) {
	// DECSCUSR: 1/2 block, 3/4 underline, 5/6 beam (blinking/steady pairs);
	// steady variants are used throughout since blink state is a separate
	// user preference this interface doesn't expose.
	switch shape {
	case CursorShapeUnderline:
		o.csi("4", 'q')
	case CursorShapeBeam:
		o.csi("6", 'q')
	default:
		o.csi("2", 'q')
	}
}

func (o *VT100Output) ResetAttributes() { o.WriteRaw("\x1b[0m") }

// SetAttributes emits an SGR sequence for style, down-sampled to depth
// first so a single Style value renders correctly regardless of the
// negotiated terminal capability.
func (o *VT100Output) SetAttributes(style Style, depth ColorDepth) {
	s := style.Downsample(depth)
	var codes []string

	if s.Attrs&AttrBold != 0 {
		codes = append(codes, "1")
	}
	if s.Attrs&AttrDim != 0 {
		codes = append(codes, "2")
	}
	if s.Attrs&AttrItalic != 0 {
		codes = append(codes, "3")
	}
	if s.Attrs&AttrUnderline != 0 {
		codes = append(codes, "4")
	}
	if s.Attrs&AttrBlink != 0 {
		codes = append(codes, "5")
	}
	if s.Attrs&AttrReverse != 0 {
		codes = append(codes, "7")
	}
	if s.Attrs&AttrHidden != 0 {
		codes = append(codes, "8")
	}

	codes = append(codes, colorSGR(s.Foreground, true)...)
	codes = append(codes, colorSGR(s.Background, false)...)

	if len(codes) == 0 {
		return
	}
	o.csi(strings.Join(codes, ";"), 'm')
}

func colorSGR(c Color, foreground bool) []string {
	base := 30
	if !foreground {
		base = 40
	}
	switch c.kind {
	case colorDefault:
		return nil
	case colorANSI:
		if c.index < 8 {
			return []string{strconv.Itoa(base + int(c.index))}
		}
		return []string{strconv.Itoa(base + 60 + int(c.index) - 8)}
	case colorIndexed:
		return []string{strconv.Itoa(base + 8), "5", strconv.Itoa(int(c.index))}
	case colorRGB:
		return []string{strconv.Itoa(base + 8), "2", strconv.Itoa(int(c.r)), strconv.Itoa(int(c.g)), strconv.Itoa(int(c.b))}
	}
	return nil
}

func (o *VT100Output) SetTitle(title string) {
	o.WriteRaw(fmt.Sprintf("\x1b]2;%s\x07", title))
}
func (o *VT100Output) ClearTitle() { o.SetTitle("") }

func (o *VT100Output) Bell() { o.WriteRaw("\x07") }

func (o *VT100Output) Flush() error {
	if o.buf.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(o.w, o.buf.String())
	o.buf.Reset()
	return err
}

func (o *VT100Output) GetSize() (Size, error) {
	if o.sizer == nil {
		return Size{}, fmt.Errorf("output: no size source configured")
	}
	ws, err := o.sizer.WindowSize()
	if err != nil {
		return Size{}, err
	}
	return Size{Rows: ws.Height, Columns: ws.Width}, nil
}

func (o *VT100Output) EnableMouseSupport()     { o.WriteRaw("\x1b[?1000h\x1b[?1006h") }
func (o *VT100Output) DisableMouseSupport()    { o.WriteRaw("\x1b[?1000l\x1b[?1006l") }
func (o *VT100Output) EnableBracketedPaste()   { o.WriteRaw("\x1b[?2004h") }
func (o *VT100Output) DisableBracketedPaste()  { o.WriteRaw("\x1b[?2004l") }

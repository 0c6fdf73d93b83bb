package keys

import (
	"strconv"
	"strings"
)

// parserState is the VT100 byte-scanning state machine's current mode
// Grounded on the same "accumulate until a terminator byte,
// then decide" shape as peco's internal/ansi.Parse, generalized from
// SGR-only scanning to the full key/mouse/paste/CPR grammar.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateSS3
	stateCsiEntry
	stateOscString
	stateSosPmApcString
	stateBracketedPaste
)

// maxPendingBytes bounds the incomplete-sequence buffer;
// overflow forces a flush of Escape + literal bytes back to Ground.
const maxPendingBytes = 256

// Emit is called once per completed KeyPress, in the order bytes were fed
// in the order bytes were fed.
type Emit func(KeyPress)

// Parser is the VT100 escape-sequence state machine. It is single-threaded
// and holds no internal lock: callers serialize Feed/Flush/Reset
// themselves, typically by only calling them from the application loop's
// input-ready handler.
type Parser struct {
	state   parserState
	pending []byte // raw bytes of the in-progress sequence, including the leading ESC
	params  []int  // CSI numeric parameters accumulated so far
	curNum  string // digits of the CSI parameter currently being scanned
	paste   strings.Builder
	emit    Emit
}

// NewParser creates a Parser that calls emit for each completed KeyPress.
func NewParser(emit Emit) *Parser {
	return &Parser{state: stateGround, emit: emit}
}

// Reset discards any partial state, returning to Ground. dropCPRWaiters is
// accepted for interface symmetry with higher layers that track pending CPR
// requests; the parser itself holds no CPR-waiter state.
func (p *Parser) Reset(dropCPRWaiters bool) {
	p.state = stateGround
	p.pending = nil
	p.params = nil
	p.curNum = ""
	p.paste.Reset()
}

// Feed appends decoded bytes to the parser, emitting completed KeyPress
// events via the registered callback as they resolve.
func (p *Parser) Feed(data []byte) {
	for _, b := range data {
		p.feedByte(b)
	}
}

// FeedAndFlush is a convenience for Feed followed by Flush.
func (p *Parser) FeedAndFlush(data []byte) {
	p.Feed(data)
	p.Flush()
}

// Flush forces emission of any buffered partial sequence as literal keys.
// This is how a bare ESC is disambiguated from the start of a longer CSI/SS3
// sequence: the application loop calls Flush once the inter-key ambiguity
// window (~50-100ms) elapses with no further bytes.
func (p *Parser) Flush() {
	switch p.state {
	case stateGround:
		return
	case stateBracketedPaste:
		// No terminator arrived; the content simply
		// accumulates until Flush/Reset -- Flush here forces it out.
		p.emitOne(KeyPress{Key: BracketedPaste, Data: p.paste.String()})
		p.paste.Reset()
		p.state = stateGround
		p.pending = nil
	default:
		p.emitLiteral(p.pending)
		p.state = stateGround
		p.pending = nil
		p.params = nil
		p.curNum = ""
	}
}

func (p *Parser) emitOne(k KeyPress) {
	if p.emit != nil {
		p.emit(k)
	}
}

// emitLiteral emits Escape for a leading ESC (if present) followed by Any
// for each remaining byte, used whenever a sequence fails to resolve.
func (p *Parser) emitLiteral(buf []byte) {
	if len(buf) == 0 {
		return
	}
	if buf[0] == 0x1b {
		p.emitOne(KeyPress{Key: Escape, Data: "\x1b"})
		buf = buf[1:]
	}
	for _, b := range buf {
		p.emitOne(KeyPress{Key: Any, Data: string(rune(b))})
	}
}

func (p *Parser) feedByte(b byte) {
	switch p.state {
	case stateGround:
		p.feedGround(b)
	case stateEscape:
		p.feedEscape(b)
	case stateSS3:
		p.feedSS3(b)
	case stateCsiEntry:
		p.feedCsi(b)
	case stateOscString, stateSosPmApcString:
		p.feedStringTerminated(b)
	case stateBracketedPaste:
		p.feedPaste(b)
	}
}

func (p *Parser) feedGround(b byte) {
	switch {
	case b == 0x1b:
		p.state = stateEscape
		p.pending = []byte{b}
	case b == 0x7f:
		p.emitOne(KeyPress{Key: ControlH, Data: string(rune(b))})
	case b <= 0x1f:
		p.emitControlByte(b)
	default:
		p.emitOne(KeyPress{Key: Any, Data: string(rune(b))})
	}
}

func (p *Parser) emitControlByte(b byte) {
	for k := ControlA; k <= ControlZ; k++ {
		if cb, ok := controlByte(k); ok && cb == b {
			key := k
			switch k {
			case ControlI:
				key = Tab
			case ControlM:
				key = Enter
			}
			p.emitOne(KeyPress{Key: key, Data: string(rune(b))})
			return
		}
	}
	// Unmapped C0 byte (e.g. NUL): pass through as Any so no input is lost.
	p.emitOne(KeyPress{Key: Any, Data: string(rune(b))})
}

func (p *Parser) feedEscape(b byte) {
	p.pending = append(p.pending, b)
	switch b {
	case '[':
		p.state = stateCsiEntry
		p.params = nil
		p.curNum = ""
	case 'O':
		p.state = stateSS3
	case ']':
		p.state = stateOscString
	case 'P', '^', '_', 'X':
		p.state = stateSosPmApcString
	default:
		if len(p.pending) > maxPendingBytes {
			p.emitLiteral(p.pending)
			p.reset()
			return
		}
		// Unknown single-character escape: degrade to Escape + literal,
		// degrading to a literal Escape plus the remaining bytes.
		p.emitLiteral(p.pending)
		p.reset()
	}
}

func (p *Parser) reset() {
	p.state = stateGround
	p.pending = nil
	p.params = nil
	p.curNum = ""
}

var ss3Keys = map[byte]ID{
	'P': F1,
	'Q': F2,
	'R': F3,
	'S': F4,
}

func (p *Parser) feedSS3(b byte) {
	p.pending = append(p.pending, b)
	if k, ok := ss3Keys[b]; ok {
		p.emitOne(KeyPress{Key: k, Data: string(p.pending)})
	} else {
		p.emitLiteral(p.pending)
	}
	p.reset()
}

func (p *Parser) flushCurNum() {
	if p.curNum == "" {
		p.params = append(p.params, -1)
		return
	}
	n, err := strconv.Atoi(p.curNum)
	if err != nil {
		n = -1
	}
	p.params = append(p.params, n)
	p.curNum = ""
}

func (p *Parser) feedCsi(b byte) {
	p.pending = append(p.pending, b)

	if len(p.pending) > maxPendingBytes {
		p.emitLiteral(p.pending)
		p.reset()
		return
	}

	switch {
	case b >= '0' && b <= '9':
		p.curNum += string(b)
		return
	case b == ';':
		p.flushCurNum()
		return
	case b == '<' && len(p.pending) == 3:
		// SGR mouse report: ESC [ < ... M/m. The marker stays in pending;
		// the report's ';'-separated parameters are scanned like any CSI's,
		// and the final M/m passes the raw bytes on unchanged.
		return
	case b >= 0x40 && b <= 0x7e:
		p.flushCurNum()
		p.finishCsi(b)
		if p.state != stateBracketedPaste {
			p.reset()
		}
		return
	default:
		// Intermediate byte (0x20-0x2f) or stray content: keep accumulating,
		// bounded by maxPendingBytes above.
		return
	}
}

func (p *Parser) finishCsi(final byte) {
	raw := string(p.pending)

	switch final {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		base := map[byte]ID{'A': Up, 'B': Down, 'C': Right, 'D': Left, 'H': Home, 'F': End}[final]
		mod := ModNone
		if len(p.params) >= 2 && p.params[0] == 1 {
			mod = modifierFromParam(p.params[1])
		}
		p.emitOne(KeyPress{Key: modifiedArrow(base, mod), Data: raw})
	case 'Z':
		p.emitOne(KeyPress{Key: BackTab, Data: raw})
	case 'R':
		// CPR: ESC [ <row> ; <col> R
		p.emitOne(KeyPress{Key: CPRResponse, Data: raw})
	case 'M', 'm':
		// SGR (ESC [ < ... M/m) or urxvt (ESC [ params M) mouse report. An
		// X10 report's three raw bytes after ESC [ M are not collected into
		// the sequence; they are parsed as separate keys.
		p.emitOne(KeyPress{Key: Vt100MouseEvent, Data: raw})
	case '~':
		p.finishTilde(raw)
	default:
		p.emitLiteral(p.pending)
	}
}

var tildeKeys = map[int]ID{
	1: Home, 2: Insert, 3: Delete, 4: End,
	5: PageUp, 6: PageDown,
	11: F1, 12: F2, 13: F3, 14: F4,
	15: F5, 17: F6, 18: F7, 19: F8, 20: F9, 21: F10, 23: F11, 24: F12,
}

func (p *Parser) finishTilde(raw string) {
	if len(p.params) == 0 {
		p.emitLiteral(p.pending)
		return
	}

	if p.params[0] == 200 {
		p.state = stateBracketedPaste
		p.paste.Reset()
		p.pending = nil
		return
	}
	if p.params[0] == 201 {
		// Stray/duplicate paste terminator outside of a paste -- ignore.
		return
	}

	k, ok := tildeKeys[p.params[0]]
	if !ok {
		p.emitLiteral(p.pending)
		return
	}
	p.emitOne(KeyPress{Key: k, Data: raw})
}

const pasteEndMarker = "\x1b[201~"

func (p *Parser) feedPaste(b byte) {
	p.paste.WriteByte(b)
	s := p.paste.String()
	if strings.HasSuffix(s, pasteEndMarker) {
		content := s[:len(s)-len(pasteEndMarker)]
		p.emitOne(KeyPress{Key: BracketedPaste, Data: content})
		p.paste.Reset()
		p.state = stateGround
	}
}

func (p *Parser) feedStringTerminated(b byte) {
	p.pending = append(p.pending, b)
	// Terminated by ST (ESC \) or BEL; no event emitted either way --
	// OSC/DCS/APC/PM/SOS are silently consumed.
	if b == 0x07 {
		p.reset()
		return
	}
	if b == '\\' && len(p.pending) >= 2 && p.pending[len(p.pending)-2] == 0x1b {
		p.reset()
		return
	}
	if len(p.pending) > maxPendingBytes {
		p.reset()
	}
}

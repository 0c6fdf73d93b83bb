package input

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/relstor/ptk/keys"
)

// TTYInput is the real-terminal Input backend. It owns a tcell.Tty (the
// thin OS/tty layer tcell exposes independently of its own Screen --
// Start/Stop for raw-mode scoping, NotifyResize for resize, Read for raw
// bytes) and runs a reader goroutine feeding every byte through this
// module's own keys.Parser. tcell never gets to interpret escape sequences
// itself; VT100 decoding stays owned by keys.Parser (vt100.go) -- this
// completes the termbox-to-tcell migration left half-finished elsewhere
// in this tree, with tcell kept strictly as the transport, not the parser.
//
// Grounded on peco's Input.Loop (input.go, a channel-fed reader with its
// own Esc/Alt disambiguation timer) and tty_posix.go/tty_bsd.go's
// IsTty/TtyReady/TtyTerm raw-mode scoping, generalized from a termbox event
// channel to a raw byte stream and from a side Esc/Alt timer to the
// parser's Feed/Flush duality.
type TTYInput struct {
	feed *keyFeed
	tty  tcell.Tty

	rawStarted bool
	done       chan struct{}
}

// NewTTYInput opens the controlling terminal via tcell and starts the
// reader goroutine. onResize, if non-nil, is invoked whenever tcell detects
// a terminal size change.
func NewTTYInput(onResize func()) (*TTYInput, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, err
	}

	t := &TTYInput{
		feed: newKeyFeed(),
		tty:  tty,
		done: make(chan struct{}),
	}

	if onResize != nil {
		tty.NotifyResize(onResize)
	}

	go t.readLoop()

	return t, nil
}

func (t *TTYInput) readLoop() {
	buf := make([]byte, 1024)
	for {
		n, err := t.tty.Read(buf)
		if n > 0 {
			t.feed.feed(buf[:n])
		}
		if err != nil {
			return
		}
		select {
		case <-t.done:
			return
		default:
		}
	}
}

func (t *TTYInput) ReadKeys() []keys.KeyPress  { return t.feed.readKeys() }
func (t *TTYInput) FlushKeys() []keys.KeyPress { return t.feed.flushKeys() }

// RawMode starts the tty's raw mode (no line buffering, no echo, no signal
// generation from Ctrl-C/Ctrl-Z -- those arrive as ordinary keys.KeyPress
// values instead) and returns a release func reverting to whatever mode
// the tty was in before. Safe to call release more than once.
func (t *TTYInput) RawMode() (func(), error) {
	if err := t.tty.Start(); err != nil {
		return func() {}, err
	}
	t.rawStarted = true
	released := false
	return func() {
		if released {
			return
		}
		released = true
		t.tty.Stop()
		t.rawStarted = false
	}, nil
}

// CookedMode temporarily stops raw mode (restoring canonical, echoed
// input, as while a subprocess owns the tty) and returns a release func
// that resumes raw mode.
func (t *TTYInput) CookedMode() (func(), error) {
	if err := t.tty.Stop(); err != nil {
		return func() {}, err
	}
	released := false
	return func() {
		if released {
			return
		}
		released = true
		t.tty.Start()
	}, nil
}

func (t *TTYInput) Attach(callback func()) func() { return t.feed.attach(callback) }
func (t *TTYInput) Detach()                       { t.feed.detach() }

func (t *TTYInput) Fileno() (uintptr, error) {
	return 0, errors.New("input: TTYInput has no directly exposed file descriptor (use the tcell.Tty backend for event-loop registration)")
}

func (t *TTYInput) TypeaheadHash() string { return "tty-input" }

func (t *TTYInput) Close() error {
	select {
	case <-t.done:
	default:
		close(t.done)
	}
	t.feed.close()
	return t.tty.Close()
}

func (t *TTYInput) Closed() bool { return t.feed.isClosed() }

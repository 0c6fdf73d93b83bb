// Package input defines the Input collaborator: the event source that turns
// raw terminal bytes (or, in tests, injected bytes) into the keys.KeyPress
// stream the rest of this module consumes. Grounded on peco's Input
// (input.go, a termbox-event channel reader with its own Esc/Alt
// disambiguation timer) and its raw-tty helpers (tty_posix.go, tty_bsd.go),
// generalized from a fixed termbox.Event feed to any byte source driving
// keys.Parser, with Esc/Alt disambiguation now living in the parser's own
// Feed/Flush duality rather than a side timer.
package input

import "github.com/relstor/ptk/keys"

// Input is the polymorphic terminal input collaborator. A concrete backend
// owns turning its medium (a real tty, an in-memory pipe, nothing at all)
// into keys.KeyPress values.
type Input interface {
	// ReadKeys drains whatever complete key presses are currently buffered.
	// Non-blocking: callers attached to an event loop poll it after a
	// ready notification; a synchronous caller may call it in a loop.
	// Returns nil when idle, never blocks.
	ReadKeys() []keys.KeyPress

	// FlushKeys forces resolution of the parser's incomplete-sequence
	// buffer (a lone Escape with no follow-up, an unterminated CSI), as
	// when an inter-key ambiguity timeout elapses with no further input.
	FlushKeys() []keys.KeyPress

	// RawMode puts the terminal (if any) into raw mode and returns a
	// release func restoring prior state; safe to call release more than
	// once. A backend with no real terminal (PipeInput, DummyInput) is a
	// no-op returning a no-op release.
	RawMode() (release func(), err error)

	// CookedMode is RawMode's counterpart, used to temporarily restore
	// line-buffered/echoed terminal behavior (e.g. while a subprocess
	// owns the tty) and return a release func reverting to raw mode.
	CookedMode() (release func(), err error)

	// Attach registers a callback invoked whenever new keys become ready
	// to read. Multiple attachments form a stack (LIFO); the returned
	// detach func pops this attachment. Callback must not block, and is
	// never invoked after Close.
	Attach(callback func()) (detach func())

	// Detach suspends notification from the most recent Attach; a no-op
	// if nothing is attached.
	Detach()

	// Fileno returns the native descriptor for event-loop registration.
	// Backends with no descriptor (DummyInput) return an error.
	Fileno() (uintptr, error)

	// TypeaheadHash returns a stable string identifying this input, so a
	// caller juggling several prompts over the same terminal can replay
	// unconsumed keys from one prompt into the next.
	TypeaheadHash() string

	// Close releases backend resources. After Close, Closed reports true
	// and ReadKeys returns nil.
	Close() error
	Closed() bool
}

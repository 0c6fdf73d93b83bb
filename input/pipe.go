package input

import (
	"errors"
	"sync"

	"github.com/relstor/ptk/keys"
)

// PipeInput is an in-memory Input for tests and SSH-style back-ends that
// receive bytes over a channel rather than owning a real tty. SendBytes and
// SendText are safe to call concurrently with ReadKeys/FlushKeys from the
// reader goroutine; the underlying keys.Parser itself assumes a single
// feeder, so sendMutex serializes writers against each other and against
// the parser.
type PipeInput struct {
	feed      *keyFeed
	sendMutex sync.Mutex
	hash      string
}

// NewPipeInput creates an empty PipeInput. hash seeds TypeaheadHash; pass ""
// to get a fixed default.
func NewPipeInput(hash string) *PipeInput {
	if hash == "" {
		hash = "pipe-input"
	}
	return &PipeInput{feed: newKeyFeed(), hash: hash}
}

// SendBytes feeds raw bytes to the parser, as if typed at a real terminal.
func (p *PipeInput) SendBytes(b []byte) {
	p.sendMutex.Lock()
	defer p.sendMutex.Unlock()
	if p.feed.isClosed() {
		return
	}
	p.feed.feed(b)
}

// SendText is SendBytes for a plain string, the common case in tests.
func (p *PipeInput) SendText(s string) {
	p.SendBytes([]byte(s))
}

func (p *PipeInput) ReadKeys() []keys.KeyPress  { return p.feed.readKeys() }
func (p *PipeInput) FlushKeys() []keys.KeyPress { return p.feed.flushKeys() }

// RawMode and CookedMode are no-ops: a pipe has no real terminal to put in
// any particular mode.
func (p *PipeInput) RawMode() (func(), error)    { return func() {}, nil }
func (p *PipeInput) CookedMode() (func(), error) { return func() {}, nil }

func (p *PipeInput) Attach(callback func()) func() { return p.feed.attach(callback) }
func (p *PipeInput) Detach()                       { p.feed.detach() }

func (p *PipeInput) Fileno() (uintptr, error) {
	return 0, errors.New("input: PipeInput has no file descriptor")
}

func (p *PipeInput) TypeaheadHash() string { return p.hash }

func (p *PipeInput) Close() error {
	p.feed.close()
	return nil
}

func (p *PipeInput) Closed() bool { return p.feed.isClosed() }

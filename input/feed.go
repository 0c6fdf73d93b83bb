package input

import (
	"sync"

	"github.com/relstor/ptk/keys"
)

// keyFeed wires a keys.Parser to a mutex-guarded output queue and an
// attach-callback stack, the machinery every Input backend built on
// keys.Parser shares regardless of where its raw bytes come from.
type keyFeed struct {
	mutex    sync.Mutex
	parser   *keys.Parser
	buffered []keys.KeyPress
	onReady  []func()
	closed   bool
}

func newKeyFeed() *keyFeed {
	f := &keyFeed{}
	f.parser = keys.NewParser(func(kp keys.KeyPress) {
		f.mutex.Lock()
		f.buffered = append(f.buffered, kp)
		callbacks := append([]func(){}, f.onReady...)
		f.mutex.Unlock()
		for _, cb := range callbacks {
			cb()
		}
	})
	return f
}

// feed pushes raw bytes through the parser. Safe to call from any goroutine;
// keys.Parser itself assumes a single feeder, so callers must serialize
// their own writes (PipeInput does this with its own mutex around
// SendBytes/SendText).
func (f *keyFeed) feed(b []byte) {
	f.parser.Feed(b)
}

func (f *keyFeed) readKeys() []keys.KeyPress {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if f.closed || len(f.buffered) == 0 {
		return nil
	}
	out := f.buffered
	f.buffered = nil
	return out
}

func (f *keyFeed) flushKeys() []keys.KeyPress {
	f.mutex.Lock()
	closed := f.closed
	f.mutex.Unlock()
	if closed {
		return nil
	}
	f.parser.Flush()
	return f.readKeys()
}

func (f *keyFeed) attach(callback func()) func() {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if f.closed {
		return func() {}
	}
	f.onReady = append(f.onReady, callback)
	idx := len(f.onReady) - 1
	return func() {
		f.mutex.Lock()
		defer f.mutex.Unlock()
		if idx < len(f.onReady) {
			f.onReady = append(f.onReady[:idx], f.onReady[idx+1:]...)
		}
	}
}

func (f *keyFeed) detach() {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if n := len(f.onReady); n > 0 {
		f.onReady = f.onReady[:n-1]
	}
}

func (f *keyFeed) close() {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.closed = true
	f.buffered = nil
	f.onReady = nil
}

func (f *keyFeed) isClosed() bool {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.closed
}

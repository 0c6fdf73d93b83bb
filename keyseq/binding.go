package keyseq

import (
	"sync"

	"github.com/relstor/ptk/filter"
	"github.com/relstor/ptk/keys"
)

// Handler runs when a binding's full key sequence is matched and its
// Filter evaluates true. Handlers read and mutate application state
// through whatever they closed over when registered -- the processor
// passes no application reference, matching the ambient-filter discipline
// the rest of this module follows (state such as ViState is captured by
// closures, not threaded through every call).
type Handler func(seq Sequence) error

// binding pairs a key sequence with the condition and action it gates.
type binding struct {
	seq     Sequence
	filter  filter.Filter
	handler Handler
}

// Processor is the KeyProcessor: it owns the binding trie, the in-flight
// input queue, and the numeric prefix argument, and decides -- one
// KeyPress at a time -- whether the presses seen so far resolve to a
// binding, remain an ambiguous prefix, or fail to match anything.
// Grounded on Keyseq.AcceptKey's "advance from current node, longest
// sequence always wins" loop, extended with the Filter gate per node and
// the explicit timeout-driven Flush this module's ambiguity-resolution
// rule (bare ESC vs an ESC-prefixed CSI sequence) requires.
type Processor struct {
	mutex   sync.Mutex
	trie    Trie
	current Node
	seq     Sequence
	arg     string
}

// NewProcessor creates an empty Processor.
func NewProcessor() *Processor {
	return &Processor{trie: NewTrie()}
}

// Bind registers handler to run when seq is matched in full and f
// evaluates true. Multiple bindings may share a sequence (disambiguated at
// dispatch time by Filter, e.g. the same keys in Vi navigation vs insert
// mode); they are tried in registration order.
func (p *Processor) Bind(seq Sequence, f filter.Filter, handler Handler) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	n := p.trie.Put(seq, nil)
	existing, _ := n.Value().([]*binding)
	n.SetValue(append(existing, &binding{seq: append(Sequence{}, seq...), filter: f, handler: handler}))
}

// DispatchResult is what Feed/Flush report back per resolved chord, so
// callers (the application loop) can tell a successful dispatch, an
// unmatched key to fall back on, and a genuine handler error apart.
type DispatchResult struct {
	Sequence Sequence
	Err      error
	// Matched is false when no binding fired -- the caller's fallback
	// policy (self-insert, ignore) applies to Sequence.
	Matched bool
}

// Feed advances the processor by one KeyPress, returning a non-nil result
// only once a chord resolves (either a dispatch or an unmatched drop); a
// nil result means the processor is waiting on a longer candidate
// sequence.
func (p *Processor) Feed(kp keys.KeyPress) *DispatchResult {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	k := FromKeyPress(kp)
	root := p.currentNode()
	next := root.Get(k)
	p.seq = append(p.seq, k)

	if next == nil {
		seq := p.seq
		p.reset()
		return &DispatchResult{Sequence: seq, Matched: false}
	}

	if next.HasChildren() {
		// A longer candidate exists; wait for more input (or a Flush once
		// the inter-key ambiguity window elapses).
		p.current = next
		return nil
	}

	return p.resolve(next)
}

// Flush forces resolution of whatever sequence is pending, called by the
// application loop once the inter-key ambiguity timeout elapses with no
// further input. A pending node with no enabled binding drops the
// buffered keys as unmatched.
func (p *Processor) Flush() *DispatchResult {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.current == nil {
		return nil
	}
	return p.resolve(p.current)
}

// CancelChain abandons any in-progress sequence without firing a handler
// or reporting an unmatched drop.
func (p *Processor) CancelChain() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.reset()
}

// InMiddleOfChain reports whether the processor is partway through a
// multi-key sequence.
func (p *Processor) InMiddleOfChain() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.current != nil
}

// Arg returns the numeric prefix argument accumulated so far (e.g. Vi's
// "3" in "3dd"), or "" if none.
func (p *Processor) Arg() string { return p.arg }

// SetArg installs the numeric prefix argument text.
func (p *Processor) SetArg(a string) { p.arg = a }

// ClearArg resets the numeric prefix argument.
func (p *Processor) ClearArg() { p.arg = "" }

func (p *Processor) currentNode() Node {
	if p.current == nil {
		return p.trie.Root()
	}
	return p.current
}

func (p *Processor) reset() {
	p.current = nil
	p.seq = nil
}

// resolve picks the first binding at n whose filter evaluates true and
// runs its handler. A node with bindings but none currently enabled is
// reported unmatched, per the fallback policy -- a stricter trie lookup
// would block the key from ever doing anything in this editing mode.
func (p *Processor) resolve(n Node) *DispatchResult {
	seq := p.seq
	p.reset()

	bindings, _ := n.Value().([]*binding)
	for _, b := range bindings {
		if b.filter == nil || b.filter.Invoke() {
			err := b.handler(seq)
			return &DispatchResult{Sequence: seq, Err: err, Matched: true}
		}
	}
	return &DispatchResult{Sequence: seq, Matched: false}
}

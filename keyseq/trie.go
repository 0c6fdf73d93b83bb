// Package keyseq implements the key-binding trie and dispatch loop: the
// structure that decides, keystroke by keystroke, whether the presses seen
// so far form a complete binding, an unresolved prefix of a longer one, or
// no binding at all. Grounded on internal/keyseq's TernaryTrie
// (ternary.go) and Keyseq/Matcher (keyseq.go), adapted from termbox's
// Key/KeyList chord type to this module's keys.ID vocabulary, and narrowed
// from a general multi-pattern Aho-Corasick matcher (ahocorasick.go) down
// to plain single-path trie descent -- key dispatch only ever walks one
// path from the root at a time, so the failure-link machinery Aho-Corasick
// needs for simultaneous multi-pattern search has no job to do here.
package keyseq

import "github.com/relstor/ptk/keys"

// Key is one link in a chord: a logical key, plus the rune it carries when
// ID is keys.Any (so bindings can target a specific printable character,
// e.g. the digraph trigger or a vi text-object letter).
type Key struct {
	ID keys.ID
	Ch rune
}

// Compare orders keys by ID then Ch, giving TernaryNode a total order to
// search on.
func (k Key) Compare(x Key) int {
	switch {
	case k.ID < x.ID:
		return -1
	case k.ID > x.ID:
		return 1
	case k.Ch < x.Ch:
		return -1
	case k.Ch > x.Ch:
		return 1
	default:
		return 0
	}
}

// Sequence is a chord: one or more Keys pressed in order (e.g. Ctrl-X
// Ctrl-S).
type Sequence []Key

// FromKeyPress converts a parsed keys.KeyPress into a trie Key. Only the
// first rune of multi-rune Data is kept (bindings never target more than
// one code point per step; BracketedPaste and similar composite events are
// never bound directly).
func FromKeyPress(kp keys.KeyPress) Key {
	var ch rune
	if kp.Key == keys.Any {
		for _, r := range kp.Data {
			ch = r
			break
		}
	}
	return Key{ID: kp.Key, Ch: ch}
}

// Trie is a ternary search trie keyed on Key chords.
type Trie interface {
	Root() Node
	Get(Sequence) Node
	Put(Sequence, any) Node
}

// Node is one trie node: Value holds whatever Put installed there (nil if
// this node is only a prefix of longer sequences).
type Node interface {
	Get(Key) Node
	HasChildren() bool
	Value() any
	SetValue(any)
}

// NewTrie creates an empty Trie.
func NewTrie() Trie {
	return &ternaryTrie{}
}

type ternaryTrie struct {
	root ternaryNode
}

func (t *ternaryTrie) Root() Node { return &t.root }

func (t *ternaryTrie) Get(seq Sequence) Node {
	var n Node = &t.root
	for _, k := range seq {
		n = n.Get(k)
		if n == nil {
			return nil
		}
	}
	return n
}

func (t *ternaryTrie) Put(seq Sequence, v any) Node {
	n := &t.root
	for _, k := range seq {
		n = n.dig(k)
	}
	n.SetValue(v)
	return n
}

type ternaryNode struct {
	label      Key
	firstChild *ternaryNode
	low, high  *ternaryNode
	value      any
}

func (n *ternaryNode) Get(k Key) Node {
	curr := n.firstChild
	for curr != nil {
		switch k.Compare(curr.label) {
		case 0:
			return curr
		case -1:
			curr = curr.low
		default:
			curr = curr.high
		}
	}
	return nil
}

func (n *ternaryNode) dig(k Key) *ternaryNode {
	if n.firstChild == nil {
		n.firstChild = &ternaryNode{label: k}
		return n.firstChild
	}
	curr := n.firstChild
	for {
		switch k.Compare(curr.label) {
		case 0:
			return curr
		case -1:
			if curr.low == nil {
				curr.low = &ternaryNode{label: k}
				return curr.low
			}
			curr = curr.low
		default:
			if curr.high == nil {
				curr.high = &ternaryNode{label: k}
				return curr.high
			}
			curr = curr.high
		}
	}
}

func (n *ternaryNode) HasChildren() bool { return n.firstChild != nil }
func (n *ternaryNode) Value() any        { return n.value }
func (n *ternaryNode) SetValue(v any)    { n.value = v }

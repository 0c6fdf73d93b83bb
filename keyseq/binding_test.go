package keyseq

import (
	"testing"

	"github.com/relstor/ptk/filter"
	"github.com/relstor/ptk/keys"
)

func kp(id keys.ID) keys.KeyPress { return keys.KeyPress{Key: id} }

func TestProcessorSingleKeyDispatch(t *testing.T) {
	p := NewProcessor()
	fired := false
	p.Bind(Sequence{{ID: keys.ControlC}}, nil, func(Sequence) error {
		fired = true
		return nil
	})

	res := p.Feed(kp(keys.ControlC))
	if res == nil || !res.Matched {
		t.Fatalf("expected an immediate match, got %v", res)
	}
	if !fired {
		t.Fatal("expected the handler to have run")
	}
}

func TestProcessorMultiKeyWaitsThenDispatches(t *testing.T) {
	p := NewProcessor()
	fired := false
	p.Bind(Sequence{{ID: keys.ControlX}, {ID: keys.ControlS}}, nil, func(Sequence) error {
		fired = true
		return nil
	})

	if res := p.Feed(kp(keys.ControlX)); res != nil {
		t.Fatalf("expected to wait for the second key, got %v", res)
	}
	if !p.InMiddleOfChain() {
		t.Fatal("expected InMiddleOfChain to report true after the first key")
	}

	res := p.Feed(kp(keys.ControlS))
	if res == nil || !res.Matched || !fired {
		t.Fatalf("expected the full chord to dispatch, got %v fired=%v", res, fired)
	}
	if p.InMiddleOfChain() {
		t.Fatal("expected the chain to reset after dispatch")
	}
}

func TestProcessorUnmatchedKeyIsReported(t *testing.T) {
	p := NewProcessor()
	p.Bind(Sequence{{ID: keys.ControlC}}, nil, func(Sequence) error { return nil })

	res := p.Feed(kp(keys.Enter))
	if res == nil || res.Matched {
		t.Fatalf("expected an unmatched result, got %v", res)
	}
}

func TestProcessorFlushResolvesShorterBinding(t *testing.T) {
	p := NewProcessor()
	var fired Sequence
	p.Bind(Sequence{{ID: keys.Escape}}, nil, func(seq Sequence) error {
		fired = seq
		return nil
	})
	p.Bind(Sequence{{ID: keys.Escape}, {ID: keys.ControlX}}, nil, func(Sequence) error {
		return nil
	})

	if res := p.Feed(kp(keys.Escape)); res != nil {
		t.Fatalf("expected to wait for a possible longer chord, got %v", res)
	}

	res := p.Flush()
	if res == nil || !res.Matched {
		t.Fatalf("expected Flush to resolve the shorter binding, got %v", res)
	}
	if len(fired) != 1 || fired[0].ID != keys.Escape {
		t.Fatalf("expected the bare Escape handler to fire, got %v", fired)
	}
}

func TestProcessorFilterGatesBinding(t *testing.T) {
	p := NewProcessor()
	enabled := false
	gate := filter.NewCondition("enabled", func() bool { return enabled })

	fired := false
	p.Bind(Sequence{{ID: keys.ControlC}}, gate, func(Sequence) error {
		fired = true
		return nil
	})

	res := p.Feed(kp(keys.ControlC))
	if res == nil || res.Matched {
		t.Fatalf("expected the gated binding to be skipped while disabled, got %v", res)
	}

	enabled = true
	res = p.Feed(kp(keys.ControlC))
	if res == nil || !res.Matched || !fired {
		t.Fatalf("expected the gated binding to fire once enabled, got %v fired=%v", res, fired)
	}
}

func TestViStateFilters(t *testing.T) {
	v := NewViState()
	if !v.EmacsMode().Invoke() {
		t.Fatal("expected to start in Emacs mode")
	}

	v.SetEditingMode(Vi)
	if !v.ViMode().Invoke() || !v.ViNavigationMode().Invoke() {
		t.Fatal("expected Vi navigation mode after switching")
	}

	v.SetInputMode(Insert)
	if !v.ViInsertMode().Invoke() || v.ViNavigationMode().Invoke() {
		t.Fatal("expected Vi insert mode, not navigation")
	}
}

func TestViStateDigraphRoundTrip(t *testing.T) {
	v := NewViState()
	v.SetEditingMode(Vi)
	v.StartDigraph()

	if _, ok := v.FeedDigraph('a'); ok {
		t.Fatal("expected the first character to only be recorded")
	}
	if !v.ViDigraphMode().Invoke() {
		t.Fatal("expected ViDigraphMode to be active mid-entry")
	}

	r, ok := v.FeedDigraph('!')
	if !ok || r != 'á' {
		t.Fatalf("expected 'á', got %q ok=%v", r, ok)
	}
	if v.ViDigraphMode().Invoke() {
		t.Fatal("expected digraph mode to end after the pair resolves")
	}
}

func TestDigraphLookupIsOrderSensitive(t *testing.T) {
	if _, ok := Lookup('!', 'a'); ok {
		t.Fatal("expected the reversed pair to not match")
	}
	if r, ok := Lookup('a', '!'); !ok || r != 'á' {
		t.Fatalf("expected 'á', got %q ok=%v", r, ok)
	}
}

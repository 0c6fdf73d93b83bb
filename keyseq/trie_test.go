package keyseq

import (
	"testing"

	"github.com/relstor/ptk/keys"
)

func TestTriePutGet(t *testing.T) {
	tr := NewTrie()
	seq := Sequence{{ID: keys.ControlX}, {ID: keys.ControlS}}
	tr.Put(seq, "save")

	n := tr.Get(seq)
	if n == nil || n.Value() != "save" {
		t.Fatalf("expected to find \"save\" at the sequence, got %v", n)
	}
}

func TestTriePrefixHasChildren(t *testing.T) {
	tr := NewTrie()
	tr.Put(Sequence{{ID: keys.ControlX}, {ID: keys.ControlS}}, "save")

	prefix := tr.Get(Sequence{{ID: keys.ControlX}})
	if prefix == nil || !prefix.HasChildren() {
		t.Fatal("expected the single-key prefix to report children")
	}
	if prefix.Value() != nil {
		t.Fatal("expected the prefix node to carry no value of its own")
	}
}

func TestTrieMissingSequence(t *testing.T) {
	tr := NewTrie()
	tr.Put(Sequence{{ID: keys.ControlX}}, "x")

	if got := tr.Get(Sequence{{ID: keys.ControlC}}); got != nil {
		t.Fatalf("expected no match, got %v", got)
	}
}

func TestKeyCompareOrdersByIDThenCh(t *testing.T) {
	a := Key{ID: keys.Any, Ch: 'a'}
	b := Key{ID: keys.Any, Ch: 'b'}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatal("expected Compare to order by Ch when ID is equal")
	}

	c := Key{ID: keys.Enter}
	if a.Compare(c) == 0 {
		t.Fatal("expected different IDs to compare unequal")
	}
}

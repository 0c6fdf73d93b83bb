package history

import (
	"sync"

	"github.com/google/btree"
)

// stringItem adapts a plain string to btree.Item so the tree orders entries
// lexically; dedupeSet only ever uses it for membership testing, not for
// iteration order.
type stringItem string

func (s stringItem) Less(other btree.Item) bool {
	return s < other.(stringItem)
}

// dedupeSet is an ordered set of seen history entries, backed by a btree for
// O(log n) membership tests instead of a linear scan over every retained
// entry. Adapted from the line-id selection set's Add/Has/Remove/Reset
// shape, generalized from line.Line items to plain strings.
type dedupeSet struct {
	mutex sync.Mutex
	tree  *btree.BTree
}

func newDedupeSet() *dedupeSet {
	return &dedupeSet{tree: btree.New(32)}
}

func (d *dedupeSet) has(s string) bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.tree.Has(stringItem(s))
}

func (d *dedupeSet) add(s string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.tree.ReplaceOrInsert(stringItem(s))
}

func (d *dedupeSet) remove(s string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.tree.Delete(stringItem(s))
}

func (d *dedupeSet) reset() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.tree = btree.New(32)
}

package input

import (
	"errors"

	"github.com/relstor/ptk/keys"
)

// DummyInput never produces keys; it stands in for a backend that cannot
// accept input (a headless renderer-only run, or a placeholder before a
// real backend attaches).
type DummyInput struct {
	closed bool
}

func NewDummyInput() *DummyInput { return &DummyInput{} }

func (d *DummyInput) ReadKeys() []keys.KeyPress  { return nil }
func (d *DummyInput) FlushKeys() []keys.KeyPress { return nil }

func (d *DummyInput) RawMode() (func(), error)    { return func() {}, nil }
func (d *DummyInput) CookedMode() (func(), error) { return func() {}, nil }

func (d *DummyInput) Attach(func()) func() { return func() {} }
func (d *DummyInput) Detach()              {}

func (d *DummyInput) Fileno() (uintptr, error) {
	return 0, errors.New("input: DummyInput has no file descriptor")
}

func (d *DummyInput) TypeaheadHash() string { return "dummy-input" }

func (d *DummyInput) Close() error {
	d.closed = true
	return nil
}

func (d *DummyInput) Closed() bool { return d.closed }

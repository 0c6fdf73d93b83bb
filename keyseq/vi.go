package keyseq

import (
	"sync"

	"github.com/relstor/ptk/filter"
)

// EditingMode selects which family of key bindings and ambient filters are
// active.
type EditingMode int

const (
	Emacs EditingMode = iota
	Vi
)

// InputMode is Vi's sub-mode within EditingMode Vi.
type InputMode int

const (
	Navigation InputMode = iota
	Insert
	InsertMultiple
	Replace
	ReplaceSingle
)

// ViState tracks the Vi emulation state machine: editing mode, Vi's own
// input sub-mode, and the handful of transient flags Vi bindings toggle
// mid-chord (operator-pending "d" waiting for a motion, Ctrl-K waiting for
// a digraph's second character, a macro recording into a register).
// Grounded on peco's Caret (mutex-guarded mutable state, caret.go)
// generalized from a single position field to this small state record; a
// grep-selector has no Vi emulation of its own to ground this against
// directly.
type ViState struct {
	mutex sync.Mutex

	editingMode EditingMode
	inputMode   InputMode

	operatorPending      bool
	waitingForDigraph     bool
	digraphFirst          rune
	selectionActive       bool
	temporaryNavigation   bool
	recordingRegister     string // "" means not recording
	searchDirectionReversed bool

	editingModeFilters map[EditingMode]filter.Filter
}

// NewViState creates a ViState starting in Emacs editing mode.
func NewViState() *ViState {
	return &ViState{editingMode: Emacs, editingModeFilters: make(map[EditingMode]filter.Filter)}
}

// viSnapshot is a plain-value copy of ViState's fields, returned by
// snapshot so filter closures never copy the sync.Mutex itself.
type viSnapshot struct {
	editingMode             EditingMode
	inputMode               InputMode
	operatorPending         bool
	waitingForDigraph       bool
	digraphFirst            rune
	selectionActive         bool
	temporaryNavigation     bool
	recordingRegister       string
	searchDirectionReversed bool
}

func (v *ViState) snapshot() viSnapshot {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return viSnapshot{
		editingMode:             v.editingMode,
		inputMode:               v.inputMode,
		operatorPending:         v.operatorPending,
		waitingForDigraph:       v.waitingForDigraph,
		digraphFirst:            v.digraphFirst,
		selectionActive:         v.selectionActive,
		temporaryNavigation:     v.temporaryNavigation,
		recordingRegister:       v.recordingRegister,
		searchDirectionReversed: v.searchDirectionReversed,
	}
}

// SetEditingMode switches between Emacs and Vi emulation, resetting Vi's
// transient sub-state (InputMode reverts to Navigation, pending flags
// clear).
func (v *ViState) SetEditingMode(m EditingMode) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.editingMode = m
	v.inputMode = Navigation
	v.operatorPending = false
	v.waitingForDigraph = false
	v.digraphFirst = 0
	v.selectionActive = false
	v.temporaryNavigation = false
}

func (v *ViState) EditingMode() EditingMode {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return v.editingMode
}

func (v *ViState) SetInputMode(m InputMode) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.inputMode = m
}

func (v *ViState) InputMode() InputMode {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return v.inputMode
}

func (v *ViState) SetOperatorPending(b bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.operatorPending = b
}

// StartDigraph begins Ctrl-K digraph entry; the two characters of the pair
// are then supplied through FeedDigraph.
func (v *ViState) StartDigraph() {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.waitingForDigraph = true
	v.digraphFirst = 0
}

// FeedDigraph supplies the next character of an in-progress digraph entry.
// The first call records it and returns (0, false); the second resolves
// the pair via Lookup and ends digraph entry regardless of whether it
// matched.
func (v *ViState) FeedDigraph(r rune) (rune, bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	if !v.waitingForDigraph {
		return 0, false
	}
	if v.digraphFirst == 0 {
		v.digraphFirst = r
		return 0, false
	}
	first := v.digraphFirst
	v.waitingForDigraph = false
	v.digraphFirst = 0
	code, ok := Lookup(first, r)
	if !ok {
		return 0, false
	}
	return code, true
}

func (v *ViState) SetSelectionActive(b bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.selectionActive = b
}

func (v *ViState) SetTemporaryNavigation(b bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.temporaryNavigation = b
}

// StartRecording begins recording a macro into the named register ("" is
// not a valid register name and is rejected).
func (v *ViState) StartRecording(register string) bool {
	if register == "" {
		return false
	}
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.recordingRegister = register
	return true
}

func (v *ViState) StopRecording() {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.recordingRegister = ""
}

func (v *ViState) SetSearchDirectionReversed(b bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.searchDirectionReversed = b
}

// InEditingMode returns a Filter testing EditingMode == m, memoized per m
// so repeated binding registrations share one Filter instance.
func (v *ViState) InEditingMode(m EditingMode) filter.Filter {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	if f, ok := v.editingModeFilters[m]; ok {
		return f
	}
	f := filter.NewCondition("InEditingMode", func() bool { return v.EditingMode() == m })
	v.editingModeFilters[m] = f
	return f
}

func (v *ViState) ViMode() filter.Filter { return v.InEditingMode(Vi) }
func (v *ViState) EmacsMode() filter.Filter { return v.InEditingMode(Emacs) }

func (v *ViState) ViNavigationMode() filter.Filter {
	return filter.NewCondition("ViNavigationMode", func() bool {
		s := v.snapshot()
		return s.editingMode == Vi && s.inputMode == Navigation && !s.temporaryNavigation
	})
}

func (v *ViState) ViInsertMode() filter.Filter {
	return filter.NewCondition("ViInsertMode", func() bool {
		s := v.snapshot()
		return s.editingMode == Vi && s.inputMode == Insert
	})
}

func (v *ViState) ViInsertMultipleMode() filter.Filter {
	return filter.NewCondition("ViInsertMultipleMode", func() bool {
		s := v.snapshot()
		return s.editingMode == Vi && s.inputMode == InsertMultiple
	})
}

func (v *ViState) ViReplaceMode() filter.Filter {
	return filter.NewCondition("ViReplaceMode", func() bool {
		s := v.snapshot()
		return s.editingMode == Vi && s.inputMode == Replace
	})
}

func (v *ViState) ViReplaceSingleMode() filter.Filter {
	return filter.NewCondition("ViReplaceSingleMode", func() bool {
		s := v.snapshot()
		return s.editingMode == Vi && s.inputMode == ReplaceSingle
	})
}

func (v *ViState) ViSelectionMode() filter.Filter {
	return filter.NewCondition("ViSelectionMode", func() bool {
		s := v.snapshot()
		return s.editingMode == Vi && s.selectionActive
	})
}

func (v *ViState) ViWaitingForTextObjectMode() filter.Filter {
	return filter.NewCondition("ViWaitingForTextObjectMode", func() bool {
		s := v.snapshot()
		return s.editingMode == Vi && s.operatorPending
	})
}

func (v *ViState) ViDigraphMode() filter.Filter {
	return filter.NewCondition("ViDigraphMode", func() bool {
		s := v.snapshot()
		return s.editingMode == Vi && s.waitingForDigraph
	})
}

func (v *ViState) ViRecordingMacro() filter.Filter {
	return filter.NewCondition("ViRecordingMacro", func() bool {
		return v.snapshot().recordingRegister != ""
	})
}

func (v *ViState) ViSearchDirectionReversed() filter.Filter {
	return filter.NewCondition("ViSearchDirectionReversed", func() bool {
		return v.snapshot().searchDirectionReversed
	})
}

func (v *ViState) EmacsInsertMode() filter.Filter {
	return filter.NewCondition("EmacsInsertMode", func() bool {
		return v.snapshot().editingMode == Emacs
	})
}

func (v *ViState) EmacsSelectionMode() filter.Filter {
	return filter.NewCondition("EmacsSelectionMode", func() bool {
		s := v.snapshot()
		return s.editingMode == Emacs && s.selectionActive
	})
}

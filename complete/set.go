package complete

import (
	"errors"
	"sync"

	"github.com/relstor/ptk/document"
)

// ErrCompleterNotFound is returned by CompleterSet.SetCurrentByName when no
// completer was registered under the given name.
var ErrCompleterNotFound = errors.New("complete: named completer not found")

// named pairs a Completer with the name it was registered under.
type named struct {
	name string
	c    Completer
}

// CompleterSet holds several Completer strategies (e.g. word-prefix vs.
// fuzzy-subsequence) and lets the application cycle through them, such as
// binding a key to "try the next completion strategy" the way shells rotate
// between history search modes.
type CompleterSet struct {
	mutex     sync.Mutex
	completers []named
	current   int
}

// NewCompleterSet creates an empty CompleterSet.
func NewCompleterSet() *CompleterSet {
	return &CompleterSet{}
}

// Add registers c under name, appending it to the rotation.
func (s *CompleterSet) Add(name string, c Completer) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.completers = append(s.completers, named{name: name, c: c})
}

// Size returns the number of registered completers.
func (s *CompleterSet) Size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.completers)
}

// Rotate advances to the next completer, wrapping around.
func (s *CompleterSet) Rotate() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if len(s.completers) == 0 {
		return
	}
	s.current++
	if s.current >= len(s.completers) {
		s.current = 0
	}
}

// SetCurrentByName selects the completer registered under name.
func (s *CompleterSet) SetCurrentByName(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for i, n := range s.completers {
		if n.name == name {
			s.current = i
			return nil
		}
	}
	return ErrCompleterNotFound
}

// CurrentName returns the name of the completer currently in rotation.
func (s *CompleterSet) CurrentName() (string, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if len(s.completers) == 0 {
		return "", false
	}
	return s.completers[s.current].name, true
}

// Complete runs the currently-selected completer. It satisfies Completer,
// so a CompleterSet can itself be passed anywhere a single Completer is
// expected.
func (s *CompleterSet) Complete(doc *document.Document) []document.Completion {
	s.mutex.Lock()
	if len(s.completers) == 0 {
		s.mutex.Unlock()
		return nil
	}
	c := s.completers[s.current].c
	s.mutex.Unlock()
	return c.Complete(doc)
}

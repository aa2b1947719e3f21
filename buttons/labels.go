package buttons

import (
	"fmt"
	"sync"
)

// LabelSet resolves button IDs to display labels, layering the hints an
// app supplied in its app info message over the protocol's static
// names. It is safe for concurrent use; a transport callback typically
// applies hints while a display loop reads labels.
type LabelSet struct {
	mu    sync.RWMutex
	hints map[byte]string
}

func NewLabelSet() *LabelSet {
	return &LabelSet{hints: make(map[byte]string)}
}

// ApplyHints merges hint labels into the set, overwriting earlier
// hints for the same IDs. Typically called with the ButtonHints of a
// decoded app info message when an app announces itself.
func (s *LabelSet) ApplyHints(hints map[byte]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, label := range hints {
		s.hints[id] = label
	}
}

// Clear drops every applied hint, as on app disconnect.
func (s *LabelSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hints = make(map[byte]string)
}

// Hint returns the applied hint for id, if any.
func (s *LabelSet) Hint(id byte) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	label, ok := s.hints[id]
	return label, ok
}

// Label returns the app's hint label for id if one was applied, else
// the protocol's static name.
func (s *LabelSet) Label(id byte) string {
	if label, ok := s.Hint(id); ok {
		return label
	}
	return Name(id)
}

// Format renders a button event like FormatState but preferring hint
// labels. State semantics still follow the button ID: hints rename
// buttons, they do not change enum or analog interpretation.
func (s *LabelSet) Format(id, state byte) string {
	return fmt.Sprintf("%s: %s", s.Label(id), StateString(id, state))
}

package document

// Completion is a single immutable completion candidate. StartPosition is
// <= 0: the number of code points before the cursor that applying this
// completion replaces.
type Completion struct {
	Text          string
	StartPosition int
	Display       string
	DisplayMeta   string
	Style         string
	SelectedStyle string
}

// CompletionState is owned by a Buffer for the duration of one completion
// cycle: OriginalDocument is the document as it stood before any candidate
// was tentatively applied, so CompleteNext/Previous can re-derive the
// "preview" document from scratch each time instead of accumulating edits.
type CompletionState struct {
	OriginalDocument *Document
	Completions      []Completion
	// CompleteIndex is nil when no candidate is currently selected (the
	// "just opened, nothing highlighted yet" state some editors use at the
	// list's boundary).
	CompleteIndex *int
}

func newCompletionState(original *Document, completions []Completion) *CompletionState {
	return &CompletionState{OriginalDocument: original, Completions: completions}
}

// Current returns the currently selected Completion, or (zero, false) if
// none is selected.
func (cs *CompletionState) Current() (Completion, bool) {
	if cs == nil || cs.CompleteIndex == nil {
		return Completion{}, false
	}
	i := *cs.CompleteIndex
	if i < 0 || i >= len(cs.Completions) {
		return Completion{}, false
	}
	return cs.Completions[i], true
}

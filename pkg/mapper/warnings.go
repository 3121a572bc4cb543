package mapper

import "sort"

// Warnings collects status option names from the source that had no legal
// equivalent in the destination vocabulary. It is run-scoped and threaded
// through the orchestrator explicitly; each distinct label is recorded once.
type Warnings struct {
	seen   map[string]struct{}
	labels []string
}

// NewWarnings creates an empty warning accumulator.
func NewWarnings() *Warnings {
	return &Warnings{seen: make(map[string]struct{})}
}

// Add records an offending label. Duplicates are ignored.
func (w *Warnings) Add(label string) {
	if _, ok := w.seen[label]; ok {
		return
	}
	w.seen[label] = struct{}{}
	w.labels = append(w.labels, label)
}

// Len returns the number of distinct labels recorded.
func (w *Warnings) Len() int {
	return len(w.labels)
}

// Labels returns the recorded labels, sorted for stable reporting.
func (w *Warnings) Labels() []string {
	out := make([]string, len(w.labels))
	copy(out, w.labels)
	sort.Strings(out)
	return out
}

package reconcile

import "translation-manager/core/tree"

// ChangeType represents the kind of mutation applied to a dependent tree.
type ChangeType string

const (
	// ChangeAdd inserts a key the dependent tree lacked.
	ChangeAdd ChangeType = "add"
	// ChangeReplace overwrites a key whose kind differs from the reference.
	ChangeReplace ChangeType = "replace"
	// ChangeRemove deletes a key.
	ChangeRemove ChangeType = "remove"
)

// Change represents one mutation applied to a dependent tree.
type Change struct {
	// Type specifies the mutation.
	Type ChangeType `json:"type"`

	// Path is the key that was mutated.
	Path tree.Path `json:"path"`

	// Reason explains why the mutation was needed.
	Reason string `json:"reason"`
}

// Summary reports the mutations of one reconciliation call, in the order they were applied.
type Summary struct {
	Changes []Change `json:"changes"`

	Added    int `json:"added"`
	Replaced int `json:"replaced"`
	Removed  int `json:"removed"`
}

// Empty reports whether the call left the dependent tree unchanged.
func (s Summary) Empty() bool {
	return len(s.Changes) == 0
}

// Merge appends the changes of other to s.
func (s *Summary) Merge(other Summary) {
	for _, c := range other.Changes {
		s.record(c)
	}
}

func (s *Summary) record(c Change) {
	s.Changes = append(s.Changes, c)
	switch c.Type {
	case ChangeAdd:
		s.Added++
	case ChangeReplace:
		s.Replaced++
	case ChangeRemove:
		s.Removed++
	}
}

// pair is a queued (reference, dependent) couple of Nodes at the same path.
type pair struct {
	path tree.Path
	ref  *tree.Value
	dep  *tree.Value
}

package reconcile

import (
	"fmt"

	"translation-manager/core/tree"
)

// Operation names a reconciliation applied between a reference and a dependent tree.
type Operation string

const (
	// OperationPropagate runs PropagateMissing.
	OperationPropagate Operation = "copy-new-keys"
	// OperationPrune runs PruneExtraneous.
	OperationPrune Operation = "trim-dead-keys"
)

// Options control how an operation is applied.
type Options struct {
	// DryRun computes the summary on a deep copy of the dependent tree.
	DryRun bool
}

// Run applies op to dest (or to a copy of it when opts.DryRun is set) and
// reports the resulting changes.
func Run(op Operation, reference, dest *tree.Value, opts Options) (Summary, error) {
	target := dest
	if opts.DryRun {
		target = dest.Clone()
	}

	switch op {
	case OperationPropagate:
		return PropagateMissing(reference, target)
	case OperationPrune:
		return PruneExtraneous(reference, target)
	default:
		return Summary{}, fmt.Errorf("unknown operation %q", op)
	}
}

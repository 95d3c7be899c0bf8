// Package reconcile keeps dependent translation trees structurally aligned with
// a reference tree while preserving the values already translated in them.
//
// # Operations
//
//  1. PropagateMissing: copies every key missing from the dependent tree. When a
//     key is a Leaf on one side and a Node on the other, the reference kind wins
//     and the dependent side receives a deep copy.
//
//  2. PruneExtraneous: removes every key of the dependent tree that the
//     reference does not have. Removals are applied after the traversal.
//
//  3. DeleteByPath: removes one fully-qualified key from any number of trees.
//
// Both traversals pair corresponding Nodes through an explicit breadth-first
// queue, so the visiting order is fixed: whole levels are processed before
// descending, keys in lexicographic order within a Node.
//
// Every call returns a Summary listing the added, replaced and removed paths.
// Run wraps the two tree-to-tree operations and supports dry runs on a copy.
//
// # Usage Example
//
//	summary, err := reconcile.PropagateMissing(primary, other)
//	if err != nil {
//	    return err
//	}
//	log.Info("copied keys", zap.Int("added", summary.Added))
//
// The operations mutate only the dependent tree and hold no state between
// calls. Callers must not reconcile the same dependent tree from two
// goroutines at once.
package reconcile

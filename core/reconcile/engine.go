package reconcile

import (
	"fmt"

	"translation-manager/core/tree"
)

// PropagateMissing copies every key of source that dest lacks into dest.
//
// Levels are processed breadth-first from an explicit queue. For each key of a
// source Node:
//   - a Leaf is copied unless dest already holds a Leaf there;
//   - a Node is copied whole unless dest already holds a Node there, in which
//     case the pair is queued so existing translations below it survive.
//
// When the kinds differ the source kind wins and dest gets a deep copy.
// source is never modified and never shares structure with dest.
func PropagateMissing(source, dest *tree.Value) (Summary, error) {
	var summary Summary
	if err := checkRoots(source, dest); err != nil {
		return summary, err
	}

	queue := []pair{{ref: source, dep: dest}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, key := range cur.ref.Keys() {
			value, _ := cur.ref.Child(key)
			existing, present := cur.dep.Child(key)
			path := cur.path.Child(key)

			switch value.Kind() {
			case tree.KindLeaf:
				if existing.IsLeaf() {
					continue
				}
			case tree.KindNode:
				if existing.IsNode() {
					queue = append(queue, pair{path: path, ref: value, dep: existing})
					continue
				}
			default:
				return summary, fmt.Errorf("%w: source value at %q", tree.ErrMalformedTree, path.String())
			}

			cur.dep.SetChild(key, value.Clone())
			if present {
				summary.record(Change{
					Type:   ChangeReplace,
					Path:   path,
					Reason: fmt.Sprintf("%s replaced by %s", existing.Kind(), value.Kind()),
				})
			} else {
				summary.record(Change{Type: ChangeAdd, Path: path, Reason: "missing " + value.Kind().String()})
			}
		}
	}
	return summary, nil
}

// PruneExtraneous deletes every key of dest that reference does not have.
//
// The traversal is breadth-first; keys present on both sides as Nodes are
// queued for comparison. Deletions are collected first and applied once the
// traversal is over, so no decision is made against a partially pruned tree.
// A key kept in dest keeps its kind: a Node where the reference has a Leaf is
// emptied rather than replaced.
func PruneExtraneous(reference, dest *tree.Value) (Summary, error) {
	var summary Summary
	if err := checkRoots(reference, dest); err != nil {
		return summary, err
	}

	type mark struct {
		container *tree.Value
		key       string
		path      tree.Path
	}
	var marks []mark

	queue := []pair{{ref: reference, dep: dest}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, key := range cur.dep.Keys() {
			value, _ := cur.dep.Child(key)
			path := cur.path.Child(key)

			refValue, ok := cur.ref.Child(key)
			if !ok {
				marks = append(marks, mark{container: cur.dep, key: key, path: path})
				continue
			}
			if value.Kind() == tree.KindInvalid {
				return summary, fmt.Errorf("%w: dependent value at %q", tree.ErrMalformedTree, path.String())
			}
			switch {
			case value.IsNode() && refValue.IsNode():
				queue = append(queue, pair{path: path, ref: refValue, dep: value})
			case value.IsNode():
				// The reference holds text here, so nothing below it can exist there.
				for _, child := range value.Keys() {
					marks = append(marks, mark{container: value, key: child, path: path.Child(child)})
				}
			}
		}
	}

	for _, m := range marks {
		m.container.DeleteChild(m.key)
		summary.record(Change{Type: ChangeRemove, Path: m.path, Reason: "not in reference"})
	}
	return summary, nil
}

// DeleteByPath removes the value at path, with its whole subtree, from every dest.
// Trees where the path does not resolve are left alone.
func DeleteByPath(path tree.Path, dests ...*tree.Value) Summary {
	var summary Summary
	for _, dest := range dests {
		if tree.Delete(dest, path) {
			summary.record(Change{Type: ChangeRemove, Path: path, Reason: "removed by request"})
		}
	}
	return summary
}

func checkRoots(ref, dep *tree.Value) error {
	if !ref.IsNode() {
		return fmt.Errorf("%w: reference root is a %s", tree.ErrMalformedTree, ref.Kind())
	}
	if !dep.IsNode() {
		return fmt.Errorf("%w: dependent root is a %s", tree.ErrMalformedTree, dep.Kind())
	}
	return nil
}

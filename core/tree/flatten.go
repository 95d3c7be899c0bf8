package tree

import "iter"

// Flatten returns a lazy depth-first sequence of every Leaf in root with its Path.
// Keys of each Node are visited in lexicographic order. Each yielded Path is a
// fresh slice the caller may keep. A Leaf root yields nothing.
func Flatten(root *Value) iter.Seq2[Path, string] {
	return func(yield func(Path, string) bool) {
		if !root.IsNode() {
			return
		}
		walk(root, nil, yield)
	}
}

func walk(node *Value, prefix Path, yield func(Path, string) bool) bool {
	for _, k := range node.Keys() {
		child := node.children[k]
		p := prefix.Child(k)
		switch child.Kind() {
		case KindLeaf:
			if !yield(p, child.text) {
				return false
			}
		case KindNode:
			if !walk(child, p, yield) {
				return false
			}
		}
	}
	return true
}

// Paths collects the Leaf paths of root in Flatten order.
func Paths(root *Value) []Path {
	var out []Path
	for p := range Flatten(root) {
		out = append(out, p)
	}
	return out
}

// Package tree provides the value model shared by every translation document.
//
// A document is a Tree: either a Leaf holding a translated string, or a Node
// mapping string keys to child Trees. No other value kinds exist; decoding any
// other JSON/TOML value fails with ErrMalformedTree.
//
// # Paths
//
// A Path is a non-empty sequence of keys, rendered with "." as separator
// (e.g. "menu.file.open"). The package offers path addressing on top of the
// value model:
//
//   - Exists: reports whether a path resolves.
//   - Get: returns the value at a path or ErrPathNotFound.
//   - Set: writes a value, creating missing intermediate Nodes.
//   - Delete: removes the final key, leaving empty parents in place.
//
// # Flattening
//
// Flatten yields every Leaf with its full Path, depth-first, visiting keys of a
// Node in lexicographic order. Two passes over an unchanged tree yield the same
// sequence, which lets callers walk two trees in lockstep.
//
// # Usage
//
//	root, _ := tree.FromAny(decoded)
//	for path, text := range tree.Flatten(root) {
//	    fmt.Println(path, text)
//	}
package tree

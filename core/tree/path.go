package tree

import (
	"fmt"
	"slices"
	"strings"
)

// Separator joins path segments in their textual form.
const Separator = "."

// Path locates a value inside a tree. Segments must not contain Separator.
type Path []string

// ParsePath splits a dotted key such as "menu.file.open" into a Path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, ErrEmptyPath
	}
	parts := strings.Split(s, Separator)
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", s)
		}
	}
	return Path(parts), nil
}

// String renders the path with Separator.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Breadcrumb renders the path with "->" between segments.
func (p Path) Breadcrumb() string {
	return strings.Join(p, "->")
}

// Child returns a new Path with key appended. p itself is never modified.
func (p Path) Child(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, key)
}

// Equal reports whether both paths hold the same segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// resolve walks every segment of p from root.
func resolve(root *Value, p Path) (*Value, bool) {
	cur := root
	for _, seg := range p {
		next, ok := cur.Child(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Exists reports whether every segment of p resolves through Nodes.
// A Leaf met before the last segment makes the path unresolved.
func Exists(root *Value, p Path) bool {
	if len(p) == 0 {
		return false
	}
	_, ok := resolve(root, p)
	return ok
}

// Get returns the value at p.
func Get(root *Value, p Path) (*Value, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPath
	}
	v, ok := resolve(root, p)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p)
	}
	return v, nil
}

// IsLeafAt reports whether p resolves to a Leaf.
func IsLeafAt(root *Value, p Path) bool {
	v, ok := resolve(root, p)
	return ok && len(p) > 0 && v.IsLeaf()
}

// Set stores value at p, creating any missing intermediate Nodes.
//
// When an existing intermediate segment holds a Leaf, Set returns ErrLeafInPath
// and leaves root untouched; it never replaces a translation with a Node.
func Set(root *Value, p Path, value *Value) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	if !root.IsNode() {
		return fmt.Errorf("%w: root of %s is a %s", ErrLeafInPath, p, root.Kind())
	}

	// Walk the existing prefix first so a conflict is found before anything is created.
	cur := root
	i := 0
	for ; i < len(p)-1; i++ {
		next, ok := cur.Child(p[i])
		if !ok {
			break
		}
		if !next.IsNode() {
			return fmt.Errorf("%w: %s holds a %s", ErrLeafInPath, p[:i+1], next.Kind())
		}
		cur = next
	}
	for ; i < len(p)-1; i++ {
		next := NewNode()
		cur.SetChild(p[i], next)
		cur = next
	}
	cur.SetChild(p[len(p)-1], value)
	return nil
}

// Delete removes the final segment of p when the whole path resolves.
// Missing paths are a no-op. Parents left empty are kept.
func Delete(root *Value, p Path) bool {
	if len(p) == 0 {
		return false
	}
	parent, ok := resolve(root, p[:len(p)-1])
	if !ok {
		return false
	}
	return parent.DeleteChild(p[len(p)-1])
}

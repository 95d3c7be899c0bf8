package tree

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrMalformedTree is returned when a value is neither a Leaf nor a Node.
	ErrMalformedTree = errors.New("malformed tree")
	// ErrPathNotFound is returned when a path does not resolve.
	ErrPathNotFound = errors.New("path not found")
	// ErrLeafInPath is returned by Set when an intermediate segment holds a Leaf.
	ErrLeafInPath = errors.New("leaf in path")
	// ErrEmptyPath is returned for operations that need at least one segment.
	ErrEmptyPath = errors.New("empty path")
)

// Kind tags a Value as a Leaf or a Node.
type Kind uint8

const (
	// KindInvalid is the zero Kind; a Value carrying it is malformed.
	KindInvalid Kind = iota
	// KindLeaf marks a terminal string.
	KindLeaf
	// KindNode marks a mapping of keys to child values.
	KindNode
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindNode:
		return "node"
	default:
		return "invalid"
	}
}

// Value is a node of a translation tree.
// Leaves are immutable; Nodes are mutated in place through their methods.
type Value struct {
	kind     Kind
	text     string
	children map[string]*Value
}

// Leaf returns a new Leaf holding text.
func Leaf(text string) *Value {
	return &Value{kind: KindLeaf, text: text}
}

// NewNode returns an empty Node.
func NewNode() *Value {
	return &Value{kind: KindNode, children: make(map[string]*Value)}
}

// Kind returns the value's tag. A nil Value reports KindInvalid.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}
	return v.kind
}

// IsLeaf reports whether v is a Leaf.
func (v *Value) IsLeaf() bool { return v.Kind() == KindLeaf }

// IsNode reports whether v is a Node.
func (v *Value) IsNode() bool { return v.Kind() == KindNode }

// Text returns the string of a Leaf, or "" for anything else.
func (v *Value) Text() string {
	if !v.IsLeaf() {
		return ""
	}
	return v.text
}

// Child returns the child stored under key. ok is false when v is not a Node
// or has no such key.
func (v *Value) Child(key string) (child *Value, ok bool) {
	if !v.IsNode() {
		return nil, false
	}
	child, ok = v.children[key]
	return child, ok
}

// SetChild stores child under key. It is a no-op on anything but a Node.
func (v *Value) SetChild(key string, child *Value) {
	if !v.IsNode() {
		return
	}
	v.children[key] = child
}

// DeleteChild removes key and reports whether it was present.
func (v *Value) DeleteChild(key string) bool {
	if !v.IsNode() {
		return false
	}
	if _, ok := v.children[key]; !ok {
		return false
	}
	delete(v.children, key)
	return true
}

// Keys returns the keys of a Node in lexicographic order.
func (v *Value) Keys() []string {
	if !v.IsNode() {
		return nil
	}
	return slices.Sorted(maps.Keys(v.children))
}

// Len returns the number of children of a Node.
func (v *Value) Len() int {
	if !v.IsNode() {
		return 0
	}
	return len(v.children)
}

// Clone returns a deep copy of v that shares no structure with it.
func (v *Value) Clone() *Value {
	switch v.Kind() {
	case KindLeaf:
		return Leaf(v.text)
	case KindNode:
		out := &Value{kind: KindNode, children: make(map[string]*Value, len(v.children))}
		for k, c := range v.children {
			out.children[k] = c.Clone()
		}
		return out
	default:
		return &Value{}
	}
}

// Equal reports whether v and other hold the same shape and text.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindLeaf:
		return v.text == other.text
	case KindNode:
		if len(v.children) != len(other.children) {
			return false
		}
		for k, c := range v.children {
			oc, ok := other.children[k]
			if !ok || !c.Equal(oc) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Validate checks that v and all of its descendants are Leaves or Nodes.
func (v *Value) Validate() error {
	type entry struct {
		path  Path
		value *Value
	}
	stack := []entry{{value: v}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch e.value.Kind() {
		case KindLeaf:
		case KindNode:
			for k, c := range e.value.children {
				stack = append(stack, entry{path: e.path.Child(k), value: c})
			}
		default:
			return fmt.Errorf("%w: invalid value at %q", ErrMalformedTree, e.path.String())
		}
	}
	return nil
}

// FromAny converts a decoded document (strings and map[string]any only) into a Value.
func FromAny(raw any) (*Value, error) {
	return fromAny(raw, nil)
}

func fromAny(raw any, at Path) (*Value, error) {
	switch t := raw.(type) {
	case string:
		return Leaf(t), nil
	case map[string]any:
		node := &Value{kind: KindNode, children: make(map[string]*Value, len(t))}
		for k, c := range t {
			child, err := fromAny(c, at.Child(k))
			if err != nil {
				return nil, err
			}
			node.children[k] = child
		}
		return node, nil
	default:
		return nil, fmt.Errorf("%w: unsupported %T at %q", ErrMalformedTree, raw, at.String())
	}
}

// ToAny converts v back into plain strings and map[string]any for encoding.
func (v *Value) ToAny() any {
	switch v.Kind() {
	case KindLeaf:
		return v.text
	case KindNode:
		out := make(map[string]any, len(v.children))
		for k, c := range v.children {
			out[k] = c.ToAny()
		}
		return out
	default:
		return nil
	}
}

package dot

import "maps"

// Node is a named vertex in a graph description. Names are free-form strings
// with no uniqueness requirement - a [Graph] may hold several nodes sharing
// a name.
//
// Node is an immutable value: [Node.WithAttrs] returns an updated copy and
// never modifies its receiver, so values held from earlier builder steps
// stay valid. The zero value is a node with an empty name and no attributes.
type Node struct {
	name  string
	attrs Attrs
}

// NewNode creates a node with the given name and no attributes.
// Any string is accepted as a name, including the empty string.
func NewNode(name string) Node {
	return Node{name: name}
}

// WithAttrs returns a copy of the node with pairs merged into its attributes.
// New pairs override existing keys; when a key repeats within one call the
// last occurrence wins.
func (n Node) WithAttrs(pairs ...Attr) Node {
	return Node{name: n.name, attrs: merge(n.attrs, pairs)}
}

// Attr returns the value stored under key and true, or "" and false when the
// node has no such attribute.
func (n Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// Name returns the node's name.
func (n Node) Name() string { return n.name }

// Equal reports whether both nodes have the same name and attributes.
func (n Node) Equal(other Node) bool {
	return n.name == other.name && maps.Equal(n.attrs, other.attrs)
}

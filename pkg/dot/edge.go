package dot

import "maps"

// Edge connects two nodes by name. Endpoints are free-form strings and are
// not checked against the nodes of any graph. Endpoint order is preserved
// and significant: NewEdge("a", "b") and NewEdge("b", "a") are distinct
// values with no normalization between them.
//
// Like [Node], Edge is an immutable value.
type Edge struct {
	node1 string
	node2 string
	attrs Attrs
}

// NewEdge creates an edge from node1 to node2 with no attributes.
func NewEdge(node1, node2 string) Edge {
	return Edge{node1: node1, node2: node2}
}

// WithAttrs returns a copy of the edge with pairs merged into its attributes,
// following the same last-write-wins rules as [Node.WithAttrs].
func (e Edge) WithAttrs(pairs ...Attr) Edge {
	return Edge{node1: e.node1, node2: e.node2, attrs: merge(e.attrs, pairs)}
}

// Attr returns the value stored under key and true, or "" and false when the
// edge has no such attribute.
func (e Edge) Attr(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// From returns the first endpoint's name.
func (e Edge) From() string { return e.node1 }

// To returns the second endpoint's name.
func (e Edge) To() string { return e.node2 }

// Equal reports whether both edges have the same endpoints, in the same
// order, and the same attributes.
func (e Edge) Equal(other Edge) bool {
	return e.node1 == other.node1 && e.node2 == other.node2 && maps.Equal(e.attrs, other.attrs)
}

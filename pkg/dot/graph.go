package dot

import (
	"maps"
	"slices"
)

// Graph is a complete graph description: an ordered node sequence, an
// ordered edge sequence, and graph-level attributes. Both sequences are
// append-only and keep insertion order.
//
// Graph is an immutable value built through chains of With calls starting
// from [New]. Each call yields a new Graph; a caller holding an earlier
// value in the chain never observes a change.
type Graph struct {
	nodes []Node
	edges []Edge
	attrs Attrs
}

// New creates an empty graph.
func New() Graph { return Graph{} }

// WithNodes returns a copy of the graph with nodes appended to the node
// sequence in the order given. No deduplication is performed - adding two
// nodes with the same name keeps both.
func (g Graph) WithNodes(nodes ...Node) Graph {
	return Graph{
		nodes: slices.Concat(g.nodes, nodes),
		edges: g.edges,
		attrs: g.attrs,
	}
}

// WithEdges returns a copy of the graph with edges appended to the edge
// sequence in the order given. Endpoints are not validated against the node
// sequence, and duplicate edges are kept.
func (g Graph) WithEdges(edges ...Edge) Graph {
	return Graph{
		nodes: g.nodes,
		edges: slices.Concat(g.edges, edges),
		attrs: g.attrs,
	}
}

// WithAttrs returns a copy of the graph with pairs merged into its
// graph-level attributes, following the same last-write-wins rules as
// [Node.WithAttrs]. The node and edge sequences are unchanged.
func (g Graph) WithAttrs(pairs ...Attr) Graph {
	return Graph{
		nodes: g.nodes,
		edges: g.edges,
		attrs: merge(g.attrs, pairs),
	}
}

// FindNode returns the first node whose name equals name, scanning the node
// sequence in insertion order, and true. When no node matches it returns the
// zero [Node] and false. With duplicate names only the first match is ever
// returned.
func (g Graph) FindNode(name string) (Node, bool) {
	for _, n := range g.nodes {
		if n.name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Attr returns the graph-level value stored under key and true, or "" and
// false when the graph has no such attribute.
func (g Graph) Attr(key string) (string, bool) {
	v, ok := g.attrs[key]
	return v, ok
}

// Nodes returns a copy of the node sequence in insertion order.
// Modifications to the returned slice do not affect the graph.
func (g Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns a copy of the edge sequence in insertion order.
// Modifications to the returned slice do not affect the graph.
func (g Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Equal reports whether both graphs have the same node sequence, the same
// edge sequence (both order-sensitive), and the same attributes.
func (g Graph) Equal(other Graph) bool {
	return slices.EqualFunc(g.nodes, other.nodes, Node.Equal) &&
		slices.EqualFunc(g.edges, other.edges, Edge.Equal) &&
		maps.Equal(g.attrs, other.attrs)
}

// Package dot provides immutable building blocks for graph descriptions.
//
// # Overview
//
// A [Graph] is an ordered sequence of named nodes, an ordered sequence of
// edges, and a set of graph-level attributes. Nodes, edges, and graphs all
// carry string-keyed [Attrs] for arbitrary metadata such as labels, colors,
// or weights. The types model the data a graph-description-language
// serializer (DOT and friends) needs to read; producing the textual output
// is left to such a serializer.
//
// # Basic Usage
//
// Values are assembled through builder chains. Every With method returns a
// new value and leaves its receiver untouched:
//
//	g := dot.New().
//		WithAttrs(dot.Attr{Key: "label", Value: "deps"}).
//		WithNodes(dot.NewNode("app"), dot.NewNode("lib")).
//		WithEdges(dot.NewEdge("app", "lib"))
//
// Look nodes up with [Graph.FindNode] and read attributes with the Attr
// methods, which follow the comma-ok convention:
//
//	if n, ok := g.FindNode("app"); ok {
//		label, _ := n.Attr("label")
//		_ = label
//	}
//
// # Attribute Merging
//
// [Node.WithAttrs], [Edge.WithAttrs], and [Graph.WithAttrs] merge an ordered
// list of [Attr] pairs into the existing attributes. New pairs override
// existing keys, and when a key repeats within one call the last occurrence
// wins. Keys not mentioned keep their previous value.
//
// # Immutability
//
// No operation mutates a previously returned value: node and edge sequences
// are freshly allocated on every append, attribute maps are copied on every
// merge, and accessors hand out clones. Values held from earlier steps of a
// builder chain therefore never change, and completed values can be shared
// across goroutines without synchronization.
//
// # What the Package Does Not Do
//
// Edges reference their endpoints by name only; nothing checks that an
// endpoint names a node present in the graph, and [Graph.WithNodes] never
// deduplicates, so a graph may hold several nodes with the same name.
// [Graph.FindNode] then returns the first match in insertion order.
package dot

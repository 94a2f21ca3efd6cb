package dot

import "maps"

// Attrs stores the string-keyed attributes attached to a [Node], [Edge], or
// [Graph]. Each key holds exactly one value; iteration order carries no
// meaning. Attribute maps are never modified after construction - merging
// always produces a new map.
type Attrs map[string]string

// Attr is a single key/value pair passed to the WithAttrs builder methods.
// Pairs form an ordered list: within one call, a later pair overrides an
// earlier pair with the same key.
type Attr struct {
	Key   string
	Value string
}

// merge overlays an ordered list of pairs onto an existing attribute map and
// returns the result as a new map. Keys absent from pairs keep their value
// from m; a key that repeats in pairs resolves to its last occurrence.
// m is left untouched and may be nil.
func merge(m Attrs, pairs []Attr) Attrs {
	out := make(Attrs, len(m)+len(pairs))
	maps.Copy(out, m)
	for _, p := range pairs {
		out[p.Key] = p.Value
	}
	return out
}

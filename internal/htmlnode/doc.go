// Package htmlnode models the small HTML tree produced by the markdown
// converter. A tree is built from Leaf and Parent values and serialised with
// Render; attribute order is preserved and values are written without escaping.
package htmlnode

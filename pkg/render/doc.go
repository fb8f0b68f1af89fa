// Package render turns a spatial hierarchy into presentation formats:
// indented console text, entity detail listings, Graphviz DOT, and
// SVG/PNG images rendered through go-graphviz.
package render

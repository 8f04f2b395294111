// Package render converts solver snapshots into Graphviz DOT and SVG
// output for visualizing the reduced inclusion graph.
//
// Each node in the rendered graph is an equivalence class of variables:
// classes that absorbed a cycle hold more than one variable and are drawn
// with a distinct fill so collapsed regions stand out. Edges are the
// remaining inter-class subset edges after collapsing.
package render

// Package shape converts trace record fields into chart-native structures.
//
// Every function here is pure and deterministic: the same input always yields
// the same output, and inputs are never modified.
//   - tree.go: nested size maps → flat (label, parent, value) triples
//   - matrix.go: flat sequences → square matrices
//   - frequency.go: key/count pairs → ascending frequency tables
//   - flow.go: prediction-source counters → fixed misprediction flow graph
//   - series.go: downsampling and naming of numeric series
package shape

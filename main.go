// Command bpviz serves an interactive dashboard over branch-predictor
// simulation results. See cmd/root.go for the subcommands.
package main

import "github.com/cbp-tools/bpviz/cmd"

func main() {
	cmd.Execute()
}

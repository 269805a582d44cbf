package summary

import (
	"fmt"
	"strconv"

	"github.com/cbp-tools/bpviz/results"
)

// InfoRow is a label/value line of an info table.
type InfoRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// InfoTable is a titled group of info rows.
type InfoTable struct {
	Title string    `json:"title"`
	Rows  []InfoRow `json:"rows"`
}

// Info renders the predictor configuration as two tables: predictor identity
// and simulation reproduction data. Every missing value shows "N/A"; a nil
// config is treated as empty.
func Info(cfg *results.PredictorConfig) []InfoTable {
	if cfg == nil {
		cfg = &results.PredictorConfig{}
	}
	p, r := cfg.Predictor, cfg.Reproduction

	mpki := NotAvailable
	if r.MPKI != nil && *r.MPKI != 0 {
		mpki = fmt.Sprintf("%.4f", *r.MPKI)
	}
	numTraces := NotAvailable
	if r.NumTraces != nil {
		numTraces = strconv.Itoa(*r.NumTraces)
	}

	return []InfoTable{
		{
			Title: "Predictor Information",
			Rows: []InfoRow{
				{Label: "Name:", Value: orNA(p.Name)},
				{Label: "Version:", Value: orNA(p.Version)},
				{Label: "CBP Version:", Value: orNA(p.CBPVersion)},
			},
		},
		{
			Title: "Simulation Information",
			Rows: []InfoRow{
				{Label: "Date:", Value: orNA(r.DateOfRun)},
				{Label: "MPKI:", Value: mpki},
				{Label: "Number of Traces:", Value: numTraces},
			},
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

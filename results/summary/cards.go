package summary

import "github.com/cbp-tools/bpviz/results"

// Card is one summary statistic of the selected trace.
type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

var cardFields = []struct {
	title, field, unit string
}{
	{"Total Instructions", results.FieldInstructions, "instructions"},
	{"Total Branches", results.FieldBranches, "branches"},
	{"Unconditional Branches", results.FieldUncondBranches, "branches"},
	{"Conditional Branches", results.FieldCondBranches, "branches"},
	{"Mispredictions", results.FieldMispredictions, "mispredictions"},
	{"Mispred/1K Instructions", results.FieldMPKI, ""},
}

// Cards builds the six summary cards for a record. An empty record yields
// cards whose values are all "N/A".
func Cards(rec results.Record) []Card {
	cards := make([]Card, 0, len(cardFields))
	for _, f := range cardFields {
		cards = append(cards, Card{
			Title: f.title,
			Value: CardValue(rec.Get(f.field)),
			Unit:  f.unit,
		})
	}
	return cards
}

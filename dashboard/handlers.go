package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/cbp-tools/bpviz/results"
	"github.com/cbp-tools/bpviz/results/summary"
	"github.com/cbp-tools/bpviz/shape"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (d *Dashboard) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"traces":      d.dataset.Len(),
		"connections": d.wsActive.Load(),
	})
}

// sortedRows returns the summary rows ordered by the ?sort= and ?desc= query.
func (d *Dashboard) sortedRows(r *http.Request) (rows []summary.Row, column string, desc bool) {
	rows = summary.Rows(d.dataset)
	column = r.URL.Query().Get("sort")
	desc = isTruthy(r.URL.Query().Get("desc"))
	if !summary.SortRows(rows, column, desc) {
		column, desc = "", false
	}
	return rows, column, desc
}

func isTruthy(v string) bool {
	switch v {
	case "1", "true", "yes":
		return true
	}
	return false
}

func (d *Dashboard) handleTraces(w http.ResponseWriter, r *http.Request) {
	rows, _, _ := d.sortedRows(r)
	writeJSON(w, http.StatusOK, rows)
}

func (d *Dashboard) handleTrace(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	rec, ok := d.dataset.Get(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown trace: "+name)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(rec.Raw()))
}

func (d *Dashboard) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, summary.Info(d.config))
}

type panelInfo struct {
	ID          string `json:"id"`
	Heading     string `json:"heading"`
	Description string `json:"description"`
}

func (d *Dashboard) panelInfos() []panelInfo {
	panels := d.panels.Panels()
	out := make([]panelInfo, len(panels))
	for i, p := range panels {
		out[i] = panelInfo{ID: p.ID, Heading: p.Heading, Description: p.Description}
	}
	return out
}

func (d *Dashboard) handlePanels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.panelInfos())
}

func (d *Dashboard) handleChart(w http.ResponseWriter, r *http.Request) {
	panel := r.PathValue("panel")
	b, err := d.Option(panel, r.URL.Query().Get("trace"))
	if errors.Is(err, ErrUnknownPanel) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		logrus.Errorf("building %s chart: %v", panel, err)
		writeError(w, http.StatusInternalServerError, "chart encoding failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

func (d *Dashboard) handleRender(w http.ResponseWriter, r *http.Request) {
	panel := r.PathValue("panel")
	fig, err := d.panels.Build(panel, r.URL.Query().Get("trace"), d.dataset)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := fig.Render(w); err != nil {
		logrus.Errorf("rendering %s chart: %v", panel, err)
	}
}

// shapeBuilders expose the intermediate chart inputs of a record.
var shapeBuilders = map[string]func(rec results.Record) any{
	"hierarchy": func(rec results.Record) any {
		return shape.FlattenTree(rec.SizeTree(results.FieldSizeMap), RootLabel)
	},
	"matrix": func(rec results.Record) any {
		return shape.ReshapeSquare(heatmapSequence(rec))
	},
	"frequency": func(rec results.Record) any {
		return shape.FrequencyTable(rec.Pairs(results.FieldLoopCounts))
	},
	"flow": func(rec results.Record) any {
		return shape.BuildMispredictionFlow(rec)
	},
	"series": func(rec results.Record) any {
		return shape.NameSeries(rec.SeriesList(results.FieldUsefulEntries))
	},
	"cards": func(rec results.Record) any {
		return summary.Cards(rec)
	},
}

func (d *Dashboard) handleShape(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	build, ok := shapeBuilders[name]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown shape: "+name)
		return
	}
	rec := d.dataset.Lookup(r.URL.Query().Get("trace"))
	writeJSON(w, http.StatusOK, build(rec))
}

// Package dashboard serves the branch-predictor results as an interactive web
// page, a JSON API and a websocket trace-selection channel.
package dashboard

import (
	"fmt"
	"html/template"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cbp-tools/bpviz/results"
)

// Options configures a Dashboard. A nil Dataset is treated as empty and a nil
// Panels uses DefaultBindings.
type Options struct {
	Dataset   *results.Dataset
	Config    *results.PredictorConfig
	Panels    *Bindings
	CacheSize int
}

// Dashboard holds everything the handlers read. It has no mutable state
// besides the option cache.
type Dashboard struct {
	dataset *results.Dataset
	config  *results.PredictorConfig
	panels  *Bindings
	cache   *optionCache
	page    *template.Template
	mux     *http.ServeMux

	wsWriteWait time.Duration
	wsActive    atomic.Int64
}

// New builds the panel bindings, chart cache and routes.
func New(opts Options) (*Dashboard, error) {
	ds := opts.Dataset
	if ds == nil {
		ds = results.NewDataset()
	}
	panels := opts.Panels
	if panels == nil {
		panels = DefaultBindings()
	}
	cache, err := newOptionCache(opts.CacheSize)
	if err != nil {
		return nil, err
	}
	page, err := parsePage()
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	d := &Dashboard{
		dataset: ds,
		config:  opts.Config,
		panels:  panels,
		cache:   cache,
		page:    page,
		mux:     http.NewServeMux(),

		wsWriteWait: wsWriteWait,
	}
	d.routes()
	return d, nil
}

// Handler returns the dashboard's HTTP handler with request logging.
func (d *Dashboard) Handler() http.Handler {
	return logRequests(d.mux)
}

func (d *Dashboard) routes() {
	d.mux.HandleFunc("GET /{$}", d.handleIndex)
	d.mux.HandleFunc("GET /healthz", d.handleHealth)
	d.mux.HandleFunc("GET /api/traces", d.handleTraces)
	d.mux.HandleFunc("GET /api/traces/{name}", d.handleTrace)
	d.mux.HandleFunc("GET /api/config", d.handleConfig)
	d.mux.HandleFunc("GET /api/panels", d.handlePanels)
	d.mux.HandleFunc("GET /api/charts/{panel}", d.handleChart)
	d.mux.HandleFunc("GET /api/shapes/{name}", d.handleShape)
	d.mux.HandleFunc("GET /render/{panel}", d.handleRender)
	d.mux.HandleFunc("GET /ws", d.handleWS)
}

// Option returns the encoded chart option of panel for trace. Options of known
// traces are cached; unknown traces render placeholders and are not cached.
func (d *Dashboard) Option(panel, trace string) ([]byte, error) {
	if b, ok := d.cache.get(panel, trace); ok {
		return b, nil
	}
	fig, err := d.panels.Build(panel, trace, d.dataset)
	if err != nil {
		return nil, err
	}
	b, err := fig.Option()
	if err != nil {
		return nil, err
	}
	if _, known := d.dataset.Get(trace); known {
		d.cache.add(panel, trace, b)
	}
	return b, nil
}

// Options returns the chart option of every panel for trace, keyed by panel id.
func (d *Dashboard) Options(trace string) (map[string][]byte, error) {
	out := make(map[string][]byte)
	for _, p := range d.panels.Panels() {
		b, err := d.Option(p.ID, trace)
		if err != nil {
			return nil, fmt.Errorf("panel %s: %w", p.ID, err)
		}
		out[p.ID] = b
	}
	return out, nil
}

// resolveTrace returns trace when the dataset has it, else the default trace.
func (d *Dashboard) resolveTrace(trace string) string {
	if _, ok := d.dataset.Get(trace); ok {
		return trace
	}
	return d.dataset.Default()
}

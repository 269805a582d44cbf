package dashboard

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/cbp-tools/bpviz/results/summary"
)

const pageTitle = "Branch Predictor Visualization"

const echartsAsset = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

var funcMap = template.FuncMap{
	// indexHref links back to the page with the given selection and table order.
	"indexHref": func(trace, sort string, desc bool) string {
		q := url.Values{}
		if trace != "" {
			q.Set("trace", trace)
		}
		if sort != "" {
			q.Set("sort", sort)
		}
		if desc {
			q.Set("desc", "1")
		}
		if len(q) == 0 {
			return "/"
		}
		return "/?" + q.Encode()
	},
	"arrow": func(active, desc bool) string {
		switch {
		case !active:
			return ""
		case desc:
			return " ▼"
		default:
			return " ▲"
		}
	},
}

// columnHeader is a sortable table heading. NextDesc is the direction a click selects.
type columnHeader struct {
	Key      string
	Title    string
	Active   bool
	NextDesc bool
}

type tableRow struct {
	Trace    string
	Cells    []string
	Selected bool
}

type pageData struct {
	Title    string
	Asset    string
	Traces   []string
	Selected string
	Sort     string
	Desc     bool
	Cards    []summary.Card
	Info     []summary.InfoTable
	Columns  []columnHeader
	Rows     []tableRow
	Panels   []panelInfo
	PanelIDs []string
}

func parsePage() (*template.Template, error) {
	return template.New("page").Funcs(funcMap).Parse(tmplBase + tmplIndex)
}

func (d *Dashboard) handleIndex(w http.ResponseWriter, r *http.Request) {
	selected := d.resolveTrace(r.URL.Query().Get("trace"))
	rows, column, desc := d.sortedRows(r)

	data := pageData{
		Title:    pageTitle,
		Asset:    echartsAsset,
		Traces:   d.dataset.Names(),
		Selected: selected,
		Sort:     column,
		Desc:     desc,
		Cards:    summary.Cards(d.dataset.Lookup(selected)),
		Info:     summary.Info(d.config),
		Panels:   d.panelInfos(),
	}
	for _, c := range summary.Columns {
		active := c.Key == column
		data.Columns = append(data.Columns, columnHeader{
			Key:      c.Key,
			Title:    c.Title,
			Active:   active,
			NextDesc: active && !desc,
		})
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, tableRow{Trace: row.Trace, Cells: row.Cells(), Selected: row.Trace == selected})
	}
	for _, p := range data.Panels {
		data.PanelIDs = append(data.PanelIDs, p.ID)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.page.ExecuteTemplate(w, "base", data); err != nil {
		logrus.Errorf("template error: %v", err)
	}
}

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<script src="{{.Asset}}"></script>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,'Segoe UI',sans-serif;background:#f4f6f9;color:#24292f;font-size:14px;line-height:1.5}
a{color:#0969da;text-decoration:none}
a:hover{text-decoration:underline}
header{background:#1f2937;color:#f9fafb;padding:12px 24px;display:flex;gap:24px;align-items:center;flex-wrap:wrap}
header h1{font-size:20px;font-weight:700}
header label{font-size:13px;color:#d1d5db;margin-right:8px}
header select{padding:4px 8px;border-radius:4px;border:1px solid #4b5563;font-size:13px}
#ws-status{margin-left:auto;font-size:11px;color:#9ca3af}
main{padding:16px 24px;max-width:1400px;margin:0 auto}
.section{background:#fff;border:1px solid #d0d7de;border-radius:6px;margin-bottom:16px;padding:16px}
.section-title{font-size:15px;font-weight:600;margin-bottom:8px}
.desc{font-size:12px;color:#57606a;margin-bottom:8px}
.cards{display:flex;gap:12px;flex-wrap:wrap}
.card{background:#f6f8fa;border:1px solid #d0d7de;border-radius:6px;padding:12px 16px;min-width:160px}
.card .lbl{font-size:12px;color:#57606a}
.card .val{font-size:22px;font-weight:700}
.card .unit{font-size:11px;color:#57606a}
.info{display:flex;gap:32px;flex-wrap:wrap}
.info td{padding:2px 12px 2px 0}
.info td:first-child{color:#57606a}
table.traces{width:100%;border-collapse:collapse;font-size:13px}
table.traces th{text-align:left;padding:6px 10px;border-bottom:1px solid #d0d7de;font-size:12px;color:#57606a}
table.traces td{padding:5px 10px;border-bottom:1px solid #eaeef2}
table.traces td.num{text-align:right;font-family:monospace}
table.traces tr.selected td{background:#ddf4ff}
.chart{width:100%;height:600px}
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<div>
<label for="trace-dropdown">Select Trace:</label>
<select id="trace-dropdown">
{{range .Traces}}<option value="{{.}}"{{if eq . $.Selected}} selected{{end}}>{{.}}</option>
{{end}}</select>
</div>
<span id="ws-status">offline</span>
</header>
<main>
{{template "content" .}}
</main>
</body>
</html>{{end}}
`

const tmplIndex = `
{{define "content"}}
<div class="section">
<h3 class="section-title">Summary Statistics</h3>
<div class="cards" id="stats-container">
{{range .Cards}}<div class="card"><div class="lbl">{{.Title}}</div><div class="val">{{.Value}}</div><div class="unit">{{.Unit}}</div></div>
{{end}}</div>
</div>

<div class="section">
<h3 class="section-title">Predictor Configuration</h3>
<div class="info">
{{range .Info}}<div>
<h4>{{.Title}}</h4>
<table>{{range .Rows}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>{{end}}</table>
</div>
{{end}}</div>
</div>

<div class="section">
<h3 class="section-title">Traces</h3>
<table class="traces">
<tr>{{range .Columns}}<th><a href="{{indexHref $.Selected .Key .NextDesc}}">{{.Title}}{{arrow .Active $.Desc}}</a></th>{{end}}</tr>
{{range .Rows}}<tr{{if .Selected}} class="selected"{{end}}>
{{range $i, $c := .Cells}}{{if eq $i 0}}<td><a href="{{indexHref $c $.Sort $.Desc}}">{{$c}}</a></td>{{else}}<td class="num">{{$c}}</td>{{end}}{{end}}
</tr>
{{else}}<tr><td colspan="7">No traces loaded</td></tr>
{{end}}</table>
</div>

{{range .Panels}}<div class="section">
<h3 class="section-title">{{.Heading}}</h3>
<p class="desc">{{.Description}}</p>
<div class="chart" id="{{.ID}}"></div>
</div>
{{end}}

<script>
(function() {
  var panels = {{.PanelIDs}};
  var selected = {{.Selected}};
  var charts = {};
  panels.forEach(function(id) {
    charts[id] = echarts.init(document.getElementById(id));
  });
  window.addEventListener('resize', function() {
    panels.forEach(function(id) { charts[id].resize(); });
  });

  function setCards(cards) {
    var box = document.getElementById('stats-container');
    box.innerHTML = '';
    (cards || []).forEach(function(c) {
      var card = document.createElement('div');
      card.className = 'card';
      [['lbl', c.title], ['val', c.value], ['unit', c.unit]].forEach(function(p) {
        var el = document.createElement('div');
        el.className = p[0];
        el.textContent = p[1];
        card.appendChild(el);
      });
      box.appendChild(card);
    });
  }

  function applyUpdate(msg) {
    selected = msg.trace;
    setCards(msg.cards);
    Object.keys(msg.charts || {}).forEach(function(id) {
      if (charts[id]) { charts[id].setOption(msg.charts[id], true); }
    });
    document.querySelectorAll('table.traces tr').forEach(function(tr) {
      var a = tr.querySelector('td a');
      tr.classList.toggle('selected', !!a && a.textContent === selected);
    });
    var params = new URLSearchParams(window.location.search);
    params.set('trace', selected);
    history.replaceState(null, '', '?' + params.toString());
  }

  function fetchCharts(trace) {
    panels.forEach(function(id) {
      fetch('/api/charts/' + encodeURIComponent(id) + '?trace=' + encodeURIComponent(trace))
        .then(function(r) { return r.json(); })
        .then(function(opt) { charts[id].setOption(opt, true); });
    });
  }

  var ws = null;
  function connect() {
    var proto = window.location.protocol === 'https:' ? 'wss://' : 'ws://';
    ws = new WebSocket(proto + window.location.host + '/ws');
    ws.onopen = function() {
      document.getElementById('ws-status').textContent = 'live';
      ws.send(JSON.stringify({type: 'select', trace: selected}));
    };
    ws.onmessage = function(ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === 'update') { applyUpdate(msg); }
      if (msg.type === 'error') { console.warn('dashboard:', msg.message); }
    };
    ws.onclose = function() {
      document.getElementById('ws-status').textContent = 'offline';
      ws = null;
      setTimeout(connect, 3000);
    };
  }

  document.getElementById('trace-dropdown').addEventListener('change', function(ev) {
    var trace = ev.target.value;
    if (ws && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({type: 'select', trace: trace}));
    } else {
      window.location.search = '?trace=' + encodeURIComponent(trace);
    }
  });

  fetchCharts(selected);
  connect();
})();
</script>
{{end}}
`

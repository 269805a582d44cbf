package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/cbp-tools/bpviz/results/summary"
)

const (
	wsWriteWait = 10 * time.Second
	wsPongWait  = 60 * time.Second
	wsPingEvery = (wsPongWait * 9) / 10
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type wsInbound struct {
	Type  string `json:"type"`
	Trace string `json:"trace,omitempty"`
}

type wsOutbound struct {
	Type    string                     `json:"type"`
	Trace   string                     `json:"trace,omitempty"`
	Cards   []summary.Card             `json:"cards,omitempty"`
	Charts  map[string]json.RawMessage `json:"charts,omitempty"`
	Code    string                     `json:"code,omitempty"`
	Message string                     `json:"message,omitempty"`
}

// handleWS serves the trace-selection channel. Each "select" message is
// answered with the cards and every chart option of the chosen trace. A
// failed write ends the connection, so a client that stops reading is dropped
// once its write deadline passes.
func (d *Dashboard) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	d.wsActive.Add(1)
	defer d.wsActive.Add(-1)

	log := logrus.WithField("conn", xid.New().String())
	log.Debug("websocket connected")
	defer log.Debug("websocket closed")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(wsPongWait)); err != nil {
		log.Warnf("ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	writeCh := make(chan wsOutbound, 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		// Closing unblocks the reader when a write fails.
		defer conn.Close()
		defer cancel()
		ticker := time.NewTicker(wsPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(d.wsWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					log.Debugf("ws write failed: %v", err)
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(d.wsWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil || ctx.Err() != nil {
			cancel()
			<-writerDone
			return
		}
		var in wsInbound
		if err := json.Unmarshal(data, &in); err != nil {
			pushWS(ctx, writeCh, wsOutbound{Type: "error", Code: "invalid_argument", Message: "invalid JSON: " + err.Error()})
			continue
		}
		switch msgType := strings.ToLower(strings.TrimSpace(in.Type)); msgType {
		case "ping":
			pushWS(ctx, writeCh, wsOutbound{Type: "pong"})
		case "select":
			pushWS(ctx, writeCh, d.selection(strings.TrimSpace(in.Trace)))
		case "":
			pushWS(ctx, writeCh, wsOutbound{Type: "error", Code: "invalid_argument", Message: "type is required"})
		default:
			pushWS(ctx, writeCh, wsOutbound{Type: "error", Code: "invalid_argument", Message: "unsupported type: " + msgType})
		}
	}
}

// selection builds the update message for trace. An empty trace selects the
// default; an unknown trace yields placeholder charts and N/A cards.
func (d *Dashboard) selection(trace string) wsOutbound {
	if trace == "" {
		trace = d.dataset.Default()
	}
	options, err := d.Options(trace)
	if err != nil {
		logrus.Errorf("building charts for %q: %v", trace, err)
		return wsOutbound{Type: "error", Code: "internal", Message: err.Error()}
	}
	charts := make(map[string]json.RawMessage, len(options))
	for id, b := range options {
		charts[id] = b
	}
	return wsOutbound{
		Type:   "update",
		Trace:  trace,
		Cards:  summary.Cards(d.dataset.Lookup(trace)),
		Charts: charts,
	}
}

func pushWS(ctx context.Context, writeCh chan<- wsOutbound, out wsOutbound) {
	select {
	case writeCh <- out:
	case <-ctx.Done():
	}
}

package report

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	channerics "github.com/niceyeti/channerics/channels"

	"boardline/config"
)

// snapshotResolution is how often LiveView recomputes a Report while the
// line is running.
const snapshotResolution = 250 * time.Millisecond

// LiveView serves a live-updating view of a running Line over HTTP: an
// index page bootstrapping a websocket, and the websocket endpoint itself.
// Grounded on the teacher's server.Server + root_view.RootView, simplified
// to boardline's single data model (Report) and collapsing the teacher's
// multi-ViewComponent fan-out (fastview.ViewBuilder, sized to a fixed
// subscriber count at construction) into a dynamic subscriber registry,
// since LiveView's client count isn't known until connections arrive.
type LiveView struct {
	line   *config.Line
	router *mux.Router

	mu          sync.Mutex
	subscribers map[string]chan Report
}

// NewLiveView constructs a LiveView over line, with routes registered but
// no background snapshot loop started yet; call Run to start serving.
func NewLiveView(line *config.Line) *LiveView {
	lv := &LiveView{
		line:        line,
		router:      mux.NewRouter(),
		subscribers: make(map[string]chan Report),
	}
	lv.router.HandleFunc("/", lv.serveIndex).Methods(http.MethodGet)
	lv.router.HandleFunc("/ws", lv.serveWebsocket).Methods(http.MethodGet)
	return lv
}

// Run starts the snapshot-generation loop and serves HTTP on addr until ctx
// is canceled.
func (lv *LiveView) Run(ctx context.Context, addr string) error {
	go lv.generateSnapshots(ctx)

	server := &http.Server{Addr: addr, Handler: lv.router}
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (lv *LiveView) generateSnapshots(ctx context.Context) {
	ticker := channerics.NewTicker(ctx.Done(), snapshotResolution)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker:
			lv.broadcast(Build(lv.line))
		}
	}
}

func (lv *LiveView) broadcast(snapshot Report) {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	for _, ch := range lv.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Slow subscriber: drop rather than block the tick.
		}
	}
}

func (lv *LiveView) subscribe() (string, <-chan Report) {
	id := uuid.NewString()
	ch := make(chan Report, 1)

	lv.mu.Lock()
	lv.subscribers[id] = ch
	lv.mu.Unlock()

	return id, ch
}

func (lv *LiveView) unsubscribe(id string) {
	lv.mu.Lock()
	ch, ok := lv.subscribers[id]
	delete(lv.subscribers, id)
	lv.mu.Unlock()

	if ok {
		close(ch)
	}
}

func (lv *LiveView) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	id, snapshots := lv.subscribe()
	defer lv.unsubscribe(id)

	log.Printf("report: viewer %s connected", id)
	cli, err := newClient(snapshots, w, r)
	if err != nil {
		log.Printf("report: viewer %s upgrade failed: %v", id, err)
		return
	}

	if err := cli.Sync(); err != nil {
		log.Printf("report: viewer %s disconnected: %v", id, err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`
<!DOCTYPE html>
<html>
<head>
	<title>boardline live view</title>
	<link rel="icon" href="data:,">
	<style>
		body { font-family: sans-serif; margin: 2em; }
		table { border-collapse: collapse; }
		td, th { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: right; }
	</style>
</head>
<body>
	<h1>Line summary</h1>
	<table id="summary"></table>
	<h1>Robots</h1>
	<table id="robots"></table>
	<h1>Missed fasteners</h1>
	<table id="missed"></table>
	<script>
		const ws = new WebSocket("ws://" + location.host + "/ws");
		ws.onmessage = (ev) => {
			const r = JSON.parse(ev.data);
			const summary = document.getElementById("summary");
			summary.innerHTML = "";
			for (const [k, v] of Object.entries(r.Summary)) {
				summary.innerHTML += "<tr><th>" + k + "</th><td>" + v + "</td></tr>";
			}
			const robots = document.getElementById("robots");
			robots.innerHTML = "<tr><th>cell_id</th><th>surface</th><th>type</th><th>work</th><th>wait</th><th>picked</th></tr>";
			for (const row of (r.Robots || [])) {
				robots.innerHTML += "<tr><td>" + row.CellID + "</td><td>" + row.Surface + "</td><td>" +
					row.TypeName + "</td><td>" + row.WorkTimeRatio.toFixed(3) + "</td><td>" +
					row.WaitTimeRatio.toFixed(3) + "</td><td>" + row.NPickedFasteners + "</td></tr>";
			}
			const missed = document.getElementById("missed");
			missed.innerHTML = "<tr><th>kind</th><th>count</th></tr>";
			for (const [k, v] of Object.entries(r.MissedFasteners || {})) {
				missed.innerHTML += "<tr><td>" + k + "</td><td>" + v + "</td></tr>";
			}
		};
	</script>
</body>
</html>
`))

func (lv *LiveView) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/xid"

	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/config"
	httpopenapi "github.com/fairyhunter13/warehouse-inventory-simulator/internal/http/openapi"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/model"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/obs"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/queue"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/store"
)

type App struct {
	Cfg     config.Config
	Store   *store.Store
	Manager *queue.Manager
	closing bool
	started time.Time
}

type ack struct {
	Status      string `json:"status"`
	RequestID   string `json:"request_id"`
	CommandID   string `json:"command_id"`
	Sequence    uint64 `json:"sequence"`
	Op          string `json:"op"`
	ProductID   int    `json:"product_id"`
	ReceivedAt  string `json:"received_at"`
	QueueDepth  int    `json:"queue_depth"`
	BacklogSize int    `json:"backlog_size"`
}

type addRequest struct {
	ID     *int   `json:"id"`
	Name   string `json:"name"`
	Stock  int    `json:"stock"`
	Day    int    `json:"day"`
	Demand int    `json:"demand"`
}

type restockRequest struct {
	Amount int `json:"amount"`
}

type purchaseRequest struct {
	Day    int `json:"day"`
	Amount int `json:"amount"`
}

func NewApp(cfg config.Config, st *store.Store, m *queue.Manager) *App {
	return &App{Cfg: cfg, Store: st, Manager: m, started: time.Now()}
}

func (a *App) StartShutdown() {
	a.closing = true
	a.Manager.CloseIntake()
}

// decodeJSON enforces the JSON content type and strict field checking.
func (a *App) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

// enqueue stamps the command and submits it, answering 202 or 503.
func (a *App) enqueue(w http.ResponseWriter, r *http.Request, cmd model.Command) {
	if a.closing || a.Manager.IsShuttingDown() {
		WriteJSONError(w, http.StatusServiceUnavailable, "shutting_down", "")
		return
	}
	cmd.Sequence = a.Manager.NextSequence()
	cmd.CommandID = xid.New().String()
	if ok := a.Manager.Enqueue(cmd); !ok {
		WriteJSONError(w, http.StatusServiceUnavailable, "shutting_down", "")
		return
	}
	ac := ack{
		Status:      "accepted",
		RequestID:   RequestIDFromContext(r.Context()),
		CommandID:   cmd.CommandID,
		Sequence:    cmd.Sequence,
		Op:          string(cmd.Op),
		ProductID:   cmd.ProductID,
		ReceivedAt:  time.Now().UTC().Format(time.RFC3339),
		QueueDepth:  a.Manager.QueueDepth(),
		BacklogSize: a.Manager.BacklogSize(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(ac)
	obs.Logger.Info("command_accepted",
		"request_id", ac.RequestID,
		"command_id", ac.CommandID,
		"sequence", ac.Sequence,
		"op", ac.Op,
		"product_id", ac.ProductID,
		"queue_depth", ac.QueueDepth,
		"backlog_size", ac.BacklogSize,
	)
}

// pathID extracts the {id} route variable. The route pattern restricts it
// to digits already.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, false
	}
	return id, true
}

func (a *App) postProductHandler(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if !a.decodeJSON(w, r, &req) {
		return
	}
	if req.ID == nil || *req.ID < 0 {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "id is required and must be >= 0")
		return
	}
	if req.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "name is required")
		return
	}
	if req.Stock < 0 {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "stock must be >= 0")
		return
	}
	if req.Demand < 0 {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "demand must be >= 0")
		return
	}
	op := model.OpAdd
	switch policy := r.URL.Query().Get("policy"); policy {
	case "", "evict":
	case "probe":
		op = model.OpBetterAdd
	default:
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "policy must be evict or probe")
		return
	}
	a.enqueue(w, r, model.Command{
		Op:        op,
		ProductID: *req.ID,
		Name:      req.Name,
		Stock:     req.Stock,
		Day:       req.Day,
		Demand:    req.Demand,
	})
}

func (a *App) restockProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	var req restockRequest
	if !a.decodeJSON(w, r, &req) {
		return
	}
	a.enqueue(w, r, model.Command{Op: model.OpRestock, ProductID: id, Amount: req.Amount})
}

func (a *App) purchaseProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	var req purchaseRequest
	if !a.decodeJSON(w, r, &req) {
		return
	}
	if req.Amount <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "amount must be > 0")
		return
	}
	a.enqueue(w, r, model.Command{Op: model.OpPurchase, ProductID: id, Day: req.Day, Amount: req.Amount})
}

func (a *App) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	a.enqueue(w, r, model.Command{Op: model.OpDelete, ProductID: id})
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	p, ok := a.Store.Get(id)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	enq, proc, backlog, depth := a.Manager.QueueMetrics()
	m := map[string]any{
		"commands_enqueued": enq,
		"commands_applied":  proc,
		"applied_by_op":     a.Store.AppliedCounts(),
		"backlog_size":      backlog,
		"queue_depth":       depth,
		"uptime_sec":        time.Since(a.started).Seconds(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

func (a *App) warehouseDumpHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(a.Store.Dump() + "\n"))
}

func (a *App) sectorsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"sectors": a.Store.Layout()})
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}

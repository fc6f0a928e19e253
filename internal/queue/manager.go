package queue

import (
	"context"
	"time"

	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/config"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/model"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/obs"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/store"
)

// Manager coordinates the single applier goroutine draining the command
// queue into the store. The warehouse does not admit concurrent mutation,
// so there is exactly one applier; ordering across commands is the enqueue
// order.
type Manager struct {
	cfg    config.Config
	q      *Queue
	st     *store.Store
	seq    Sequencer
	ctx    context.Context
	cancel context.CancelFunc
}

// NewManager constructs a Manager with the given config, queue, and store.
func NewManager(cfg config.Config, q *Queue, st *store.Store) *Manager {
	return &Manager{cfg: cfg, q: q, st: st}
}

// Start begins processing in the background.
func (m *Manager) Start(parent context.Context) {
	m.ctx, m.cancel = context.WithCancel(parent)
	m.q.Start(m.ctx, m.cfg.QueueHighWatermark)
	go m.applier(m.ctx)
}

// Stop cancels the broker and the applier.
func (m *Manager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

// applier drains commands from the queue and applies them to the store.
func (m *Manager) applier(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-m.q.Out():
			m.st.Apply(cmd)
			m.q.MarkProcessed()
			obs.Logger.Debug("command_applied",
				"command_id", cmd.CommandID, "op", string(cmd.Op),
				"product_id", cmd.ProductID, "sequence", cmd.Sequence)
		}
	}
}

// Enqueue proxies to the underlying queue.
func (m *Manager) Enqueue(cmd model.Command) bool { return m.q.Enqueue(cmd) }

// BacklogSize returns pending items in the queue.
func (m *Manager) BacklogSize() int { return m.q.BacklogSize() }

// QueueDepth returns backlog plus buffered output items.
func (m *Manager) QueueDepth() int { return m.q.QueueDepth() }

// NextSequence returns the next sequence number.
func (m *Manager) NextSequence() uint64 { return m.seq.Next() }

// IsShuttingDown reports whether new enqueues are rejected.
func (m *Manager) IsShuttingDown() bool { return m.q.IsShuttingDown() }

// CloseIntake disallows future enqueues.
func (m *Manager) CloseIntake() { m.q.CloseIntake() }

// QueueMetrics exposes the underlying queue metrics.
func (m *Manager) QueueMetrics() (enq, proc uint64, backlog, depth int) {
	return m.q.Metrics()
}

// DrainUntil blocks until the queue is fully drained or context is done.
func (m *Manager) DrainUntil(ctx context.Context) bool {
	for {
		enq, proc, backlog, depth := m.q.Metrics()
		if backlog == 0 && depth == 0 && enq == proc {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(50 * time.Millisecond):
		}
	}
}

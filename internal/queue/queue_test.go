package queue

import (
	"context"
	"testing"
	"time"

	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/config"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/model"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/store"
)

func TestQueueNonBlockingEnqueue(t *testing.T) {
	q := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx, 0)
	for i := 0; i < 1000; i++ {
		ok := q.Enqueue(model.Command{Op: model.OpAdd, ProductID: i, Name: "x"})
		if !ok {
			t.Fatalf("enqueue failed at %d", i)
		}
	}
	if q.BacklogSize() == 0 {
		t.Fatalf("expected backlog > 0")
	}
}

func TestQueueShutdownIntake(t *testing.T) {
	q := New(1)
	q.CloseIntake()
	if !q.IsShuttingDown() {
		t.Fatalf("expected shutting down true")
	}
	ok := q.Enqueue(model.Command{Op: model.OpAdd, ProductID: 1, Name: "x"})
	if ok {
		t.Fatalf("expected enqueue false when shutting down")
	}
}

func TestManagerDrainAppliesInOrder(t *testing.T) {
	cfg := config.Load()
	st := store.New()
	q := New(16)
	mgr := NewManager(cfg, q, st)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mgr.Start(ctx)
	defer mgr.Stop()

	_ = mgr.Enqueue(model.Command{Op: model.OpAdd, ProductID: 5, Name: "p", Stock: 10, Demand: 1, Sequence: mgr.NextSequence()})
	_ = mgr.Enqueue(model.Command{Op: model.OpPurchase, ProductID: 5, Day: 2, Amount: 4, Sequence: mgr.NextSequence()})
	_ = mgr.Enqueue(model.Command{Op: model.OpRestock, ProductID: 5, Amount: 6, Sequence: mgr.NextSequence()})

	ctxDrain, cancelDrain := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelDrain()
	if ok := mgr.DrainUntil(ctxDrain); !ok {
		t.Fatalf("drain timeout")
	}
	got, ok := st.Get(5)
	if !ok {
		t.Fatalf("product not applied")
	}
	// add(10) then purchase(4) then restock(6): order matters
	if got.Stock != 12 || got.Demand != 5 {
		t.Fatalf("unexpected state after drain: %+v", got)
	}
	enq, proc, backlog, depth := mgr.QueueMetrics()
	if enq != 3 || proc != 3 || backlog != 0 || depth != 0 {
		t.Fatalf("unexpected metrics: %d %d %d %d", enq, proc, backlog, depth)
	}
}

func TestManagerDrainTimesOutWhenStopped(t *testing.T) {
	cfg := config.Load()
	st := store.New()
	q := New(4)
	mgr := NewManager(cfg, q, st)
	// manager never started: nothing drains the backlog
	_ = mgr.Enqueue(model.Command{Op: model.OpAdd, ProductID: 1, Name: "p"})
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if ok := mgr.DrainUntil(ctx); ok {
		t.Fatalf("expected drain timeout")
	}
}

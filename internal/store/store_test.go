package store

import (
	"sync"
	"testing"

	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/model"
)

func TestStoreApplyAddThenGet(t *testing.T) {
	s := New()
	s.Apply(model.Command{Op: model.OpAdd, ProductID: 7, Name: "pen", Stock: 3, Day: 1, Demand: 2})
	got, ok := s.Get(7)
	if !ok {
		t.Fatalf("not found")
	}
	if got.Name != "pen" || got.Stock != 3 || got.Demand != 2 {
		t.Fatalf("unexpected: %+v", got)
	}
}

func TestStorePurchaseRejectionLeavesState(t *testing.T) {
	s := New()
	s.Apply(model.Command{Op: model.OpAdd, ProductID: 1, Name: "p", Stock: 5, Demand: 1})
	s.Apply(model.Command{Op: model.OpPurchase, ProductID: 1, Day: 3, Amount: 10})
	got, _ := s.Get(1)
	if got.Stock != 5 || got.Demand != 1 || got.LastPurchaseDay != nil {
		t.Fatalf("rejected purchase mutated state: %+v", got)
	}
}

func TestStoreDeleteThenGetMisses(t *testing.T) {
	s := New()
	s.Apply(model.Command{Op: model.OpAdd, ProductID: 4, Name: "p", Stock: 1, Demand: 1})
	s.Apply(model.Command{Op: model.OpDelete, ProductID: 4})
	if _, ok := s.Get(4); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestStoreUnknownOpDropped(t *testing.T) {
	s := New()
	s.Apply(model.Command{Op: "mystery", ProductID: 1})
	if n := len(s.AppliedCounts()); n != 0 {
		t.Fatalf("expected no applied ops, got %d", n)
	}
}

func TestStoreConcurrentApplies(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		id := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Apply(model.Command{Op: model.OpAdd, ProductID: id, Name: "p", Stock: 1, Demand: id})
		}()
	}
	wg.Wait()
	for i := 0; i < 10; i++ {
		if _, ok := s.Get(i); !ok {
			t.Fatalf("product %d missing", i)
		}
	}
	if s.AppliedCounts()[model.OpAdd] != 10 {
		t.Fatalf("expected 10 applied adds")
	}
}

func TestStoreLayoutSnapshot(t *testing.T) {
	s := New()
	s.Apply(model.Command{Op: model.OpAdd, ProductID: 3, Name: "p", Stock: 2, Demand: 9})
	layout := s.Layout()
	if len(layout) != 10 {
		t.Fatalf("expected 10 sectors, got %d", len(layout))
	}
	if len(layout[3]) != 1 || layout[3][0].ID != 3 || layout[3][0].Pos != 1 {
		t.Fatalf("unexpected sector 3 layout: %+v", layout[3])
	}
	if len(layout[0]) != 0 {
		t.Fatalf("expected empty sector 0")
	}
}

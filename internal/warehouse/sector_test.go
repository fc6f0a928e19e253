package warehouse

import (
	"testing"

	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/model"
)

func TestSectorAddStopsAtCapacity(t *testing.T) {
	s := &Sector{}
	for i := 0; i < SectorCapacity+3; i++ {
		s.Add(model.NewProduct(i, "p", 1, 0, i))
	}
	if s.Size() != SectorCapacity {
		t.Fatalf("expected size %d, got %d", SectorCapacity, s.Size())
	}
	// the overflow adds were dropped
	for i := 1; i <= s.Size(); i++ {
		if s.Get(i).ID >= SectorCapacity {
			t.Fatalf("overflow product %d was admitted", s.Get(i).ID)
		}
	}
}

func TestSectorGetOutsideOccupiedRange(t *testing.T) {
	s := &Sector{}
	s.Add(model.NewProduct(1, "p", 1, 0, 1))
	if s.Get(0) != nil {
		t.Fatalf("expected nil at position 0")
	}
	if s.Get(2) != nil {
		t.Fatalf("expected nil past size")
	}
	if s.Get(1) == nil {
		t.Fatalf("expected product at position 1")
	}
}

func TestSectorSetOutsideOccupiedRangeIgnored(t *testing.T) {
	s := &Sector{}
	s.Add(model.NewProduct(1, "p", 1, 0, 1))
	s.Set(2, model.NewProduct(2, "q", 1, 0, 2))
	if s.Size() != 1 || s.Get(2) != nil {
		t.Fatalf("set past size must not extend the sector")
	}
}

func TestSectorSwim(t *testing.T) {
	s := &Sector{}
	s.Add(model.NewProduct(1, "p", 1, 0, 5))
	s.Add(model.NewProduct(2, "q", 1, 0, 3))
	s.Swim(2)
	if s.Get(1).ID != 2 || s.Get(2).ID != 1 {
		t.Fatalf("expected smaller demand at root, got %v", s)
	}
	// already ordered: swim is a no-op
	s.Swim(2)
	if s.Get(1).ID != 2 {
		t.Fatalf("swim must not move an ordered slot")
	}
}

func TestSectorSinkPrefersLeftChildOnTie(t *testing.T) {
	s := &Sector{}
	s.Add(model.NewProduct(1, "root", 1, 0, 9))
	s.Add(model.NewProduct(2, "left", 1, 0, 4))
	s.Add(model.NewProduct(3, "right", 1, 0, 4))
	s.Sink(1)
	if s.Get(1).ID != 2 {
		t.Fatalf("expected left child at root on tie, got id %d", s.Get(1).ID)
	}
	if s.Get(2).ID != 1 {
		t.Fatalf("expected old root at left child, got id %d", s.Get(2).ID)
	}
}

func TestSectorSinkWalksDown(t *testing.T) {
	s := &Sector{}
	s.Add(model.NewProduct(1, "a", 1, 0, 10))
	s.Add(model.NewProduct(2, "b", 1, 0, 2))
	s.Add(model.NewProduct(3, "c", 1, 0, 6))
	s.Add(model.NewProduct(4, "d", 1, 0, 3))
	s.Add(model.NewProduct(5, "e", 1, 0, 7))
	s.Sink(1)
	// 10 sinks past 2 and then past 3, ending in a leaf
	if s.Get(1).Demand != 2 || s.Get(2).Demand != 3 || s.Get(4).Demand != 10 {
		t.Fatalf("unexpected layout after sink: %v", s)
	}
}

func TestSectorDeleteLast(t *testing.T) {
	s := &Sector{}
	s.Add(model.NewProduct(1, "p", 1, 0, 1))
	s.Add(model.NewProduct(2, "q", 1, 0, 2))
	s.DeleteLast()
	if s.Size() != 1 || s.Get(2) != nil {
		t.Fatalf("expected last slot cleared")
	}
	s.DeleteLast()
	s.DeleteLast() // empty sector: no-op
	if s.Size() != 0 {
		t.Fatalf("expected empty sector, got size %d", s.Size())
	}
}

func TestSectorString(t *testing.T) {
	s := &Sector{}
	if s.String() != "[]" {
		t.Fatalf("empty sector renders as [], got %q", s.String())
	}
	s.Add(model.NewProduct(7, "pen", 3, 1, 2))
	want := "[{id: 7, name: pen, stock: 3, day: 1, demand: 2}]"
	if s.String() != want {
		t.Fatalf("unexpected rendering %q", s.String())
	}
}

// Package store is the concurrency boundary around the warehouse. The
// warehouse core is single-threaded by contract; Store serializes every
// mutation behind a write lock and serves reads behind a read lock.
package store

import (
	"sync"

	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/model"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/warehouse"
)

// Slot is a snapshot of one occupied heap position, for introspection.
type Slot struct {
	Pos             int    `json:"pos"`
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Stock           int    `json:"stock"`
	Day             int    `json:"day"`
	Demand          int    `json:"demand"`
	LastPurchaseDay *int   `json:"last_purchase_day,omitempty"`
}

type Store struct {
	mu      sync.RWMutex
	wh      *warehouse.Warehouse
	applied map[model.Op]uint64
}

func New() *Store {
	return &Store{
		wh:      warehouse.New(),
		applied: make(map[model.Op]uint64),
	}
}

// Apply dispatches one command to the warehouse. Commands with unknown ops
// are dropped; the warehouse itself treats unknown product ids as no-ops.
func (s *Store) Apply(cmd model.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch cmd.Op {
	case model.OpAdd:
		s.wh.AddProduct(cmd.ProductID, cmd.Name, cmd.Stock, cmd.Day, cmd.Demand)
	case model.OpBetterAdd:
		s.wh.BetterAddProduct(cmd.ProductID, cmd.Name, cmd.Stock, cmd.Day, cmd.Demand)
	case model.OpRestock:
		s.wh.RestockProduct(cmd.ProductID, cmd.Amount)
	case model.OpPurchase:
		s.wh.PurchaseProduct(cmd.ProductID, cmd.Day, cmd.Amount)
	case model.OpDelete:
		s.wh.DeleteProduct(cmd.ProductID)
	default:
		return
	}
	s.applied[cmd.Op]++
}

// Get returns a copy of the product with the given id.
func (s *Store) Get(id int) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.wh.FindProduct(id)
	if p == nil {
		return model.Product{}, false
	}
	return *p, true
}

// Dump returns the human-readable warehouse rendering.
func (s *Store) Dump() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wh.String()
}

// Layout snapshots every sector's occupied slots in heap-array order.
func (s *Store) Layout() [][]Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sectors := s.wh.Sectors()
	out := make([][]Slot, len(sectors))
	for i, sec := range sectors {
		slots := make([]Slot, 0, sec.Size())
		for pos := 1; pos <= sec.Size(); pos++ {
			p := sec.Get(pos)
			slots = append(slots, Slot{
				Pos:             pos,
				ID:              p.ID,
				Name:            p.Name,
				Stock:           p.Stock,
				Day:             p.Day,
				Demand:          p.Demand,
				LastPurchaseDay: p.LastPurchaseDay,
			})
		}
		out[i] = slots
	}
	return out
}

// AppliedCounts reports how many commands of each op have been applied.
func (s *Store) AppliedCounts() map[model.Op]uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[model.Op]uint64, len(s.applied))
	for k, v := range s.applied {
		out[k] = v
	}
	return out
}

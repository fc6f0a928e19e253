// Package warehouse implements a fixed-capacity inventory warehouse: a
// bucket array of sectors, each sector a small array-backed binary min-heap
// ordered by product demand. Space never grows; when a sector is full the
// least-demanded product is evicted to admit a new one.
package warehouse

import (
	"strings"

	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/model"
)

// SectorCapacity is the number of product slots in a sector. Sectors never
// grow past it.
const SectorCapacity = 5

// Sector is a bounded binary min-heap of products keyed on demand. Slots
// are 1-indexed so the usual heap arithmetic applies: children of i live at
// 2i and 2i+1, the parent at i/2. Slot 0 is unused.
type Sector struct {
	slots [SectorCapacity + 1]*model.Product
	size  int
}

// Size returns the number of occupied slots.
func (s *Sector) Size() int { return s.size }

// Get returns the product at pos, or nil if pos is outside the occupied
// range 1..size.
func (s *Sector) Get(pos int) *model.Product {
	if pos < 1 || pos > s.size {
		return nil
	}
	return s.slots[pos]
}

// Set writes p at pos. Writes outside 1..size are ignored.
func (s *Sector) Set(pos int, p *model.Product) {
	if pos < 1 || pos > s.size {
		return
	}
	s.slots[pos] = p
}

// Add appends p at position size+1 without restoring heap order; callers
// follow up with Swim. Adding to a full sector is a no-op.
func (s *Sector) Add(p *model.Product) {
	if s.size == SectorCapacity {
		return
	}
	s.size++
	s.slots[s.size] = p
}

// Swap exchanges the slots at i and j.
func (s *Sector) Swap(i, j int) {
	s.slots[i], s.slots[j] = s.slots[j], s.slots[i]
}

// DeleteLast clears the last occupied slot and shrinks the sector.
func (s *Sector) DeleteLast() {
	if s.size == 0 {
		return
	}
	s.slots[s.size] = nil
	s.size--
}

// Swim moves the slot at pos upward until its demand is no longer smaller
// than its parent's.
func (s *Sector) Swim(pos int) {
	for pos > 1 && s.slots[pos].Demand < s.slots[pos/2].Demand {
		s.Swap(pos, pos/2)
		pos /= 2
	}
}

// Sink moves the slot at pos downward while the smaller of its children has
// a smaller demand. On equal children the left child wins.
func (s *Sector) Sink(pos int) {
	for 2*pos <= s.size {
		child := 2 * pos
		if child+1 <= s.size && s.slots[child+1].Demand < s.slots[child].Demand {
			child++
		}
		if s.slots[child].Demand >= s.slots[pos].Demand {
			break
		}
		s.Swap(pos, child)
		pos = child
	}
}

// String renders the occupied slots in array order (not sorted order).
func (s *Sector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 1; i <= s.size; i++ {
		if i > 1 {
			b.WriteString(", ")
		}
		b.WriteString(s.slots[i].String())
	}
	b.WriteByte(']')
	return b.String()
}

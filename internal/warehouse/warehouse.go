package warehouse

import (
	"strings"

	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/model"
	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/obs"
)

// SectorCount is the number of buckets in the warehouse. Products route to
// sector id % SectorCount.
const SectorCount = 10

// Warehouse owns a fixed array of sectors and orchestrates all mutations by
// delegating to the addressed sector's heap primitives. It is not safe for
// concurrent use; callers serialize access (see internal/store).
type Warehouse struct {
	sectors [SectorCount]*Sector
}

// New initializes a warehouse with SectorCount empty sectors.
func New() *Warehouse {
	w := &Warehouse{}
	for i := range w.sectors {
		w.sectors[i] = &Sector{}
	}
	return w
}

func sectorIndex(id int) int { return id % SectorCount }

// AddProduct admits a product into its addressed sector. If the sector is
// full, the minimum-demand product is evicted first.
func (w *Warehouse) AddProduct(id int, name string, stock, day, demand int) {
	w.evictIfNeeded(id)
	w.addToEnd(id, name, stock, day, demand)
	w.fixHeap(sectorIndex(id))
}

// addToEnd appends the new product at the sector's tail without fixing heap
// order.
func (w *Warehouse) addToEnd(id int, name string, stock, day, demand int) {
	s := w.sectors[sectorIndex(id)]
	if s.Size() < SectorCapacity {
		s.Add(model.NewProduct(id, name, stock, day, demand))
	}
}

// fixHeap restores the min-heap invariant of a sector by swimming every
// occupied position from 2 upward. An evict followed by an add can leave
// more than one slot out of order, so the full pass is required.
func (w *Warehouse) fixHeap(sector int) {
	s := w.sectors[sector]
	for i := 2; i <= s.Size(); i++ {
		s.Swim(i)
	}
}

// evictIfNeeded removes the least-demanded product from the addressed
// sector when it is full: the root holds the minimum, so swap it with the
// last slot, drop the last slot, and sink the remaining positions.
func (w *Warehouse) evictIfNeeded(id int) {
	s := w.sectors[sectorIndex(id)]
	if s.Size() < SectorCapacity {
		return
	}
	evicted := s.Get(1)
	s.Swap(1, s.Size())
	s.DeleteLast()
	for i := 1; i <= s.Size(); i++ {
		s.Sink(i)
	}
	obs.Logger.Info("product_evicted",
		"product_id", evicted.ID, "demand", evicted.Demand, "sector", sectorIndex(id))
}

// RestockProduct adds amount (which may be negative) to the stock of the
// product with the given id. Demand is untouched, so heap order is
// preserved. Unknown ids are ignored.
func (w *Warehouse) RestockProduct(id, amount int) {
	s := w.sectors[sectorIndex(id)]
	for i := 1; i <= s.Size(); i++ {
		p := s.Get(i)
		if p == nil || p.ID != id {
			continue
		}
		p.UpdateStock(amount)
		s.Set(i, p)
		obs.Logger.Info("product_restocked",
			"product_id", id, "amount", amount, "stock", p.Stock)
		return
	}
}

// PurchaseProduct records a purchase of amount units on the given day. The
// purchase is rejected, with no mutation at all, when stock is short.
// A successful purchase raises demand, so the sector's heap is rebuilt.
func (w *Warehouse) PurchaseProduct(id, day, amount int) {
	sector := sectorIndex(id)
	s := w.sectors[sector]
	for i := 1; i <= s.Size(); i++ {
		p := s.Get(i)
		if p == nil || p.ID != id {
			continue
		}
		if p.Stock < amount {
			obs.Logger.Warn("purchase_rejected",
				"product_id", id, "stock", p.Stock, "amount", amount)
			return
		}
		p.RecordPurchase(day)
		p.UpdateStock(-amount)
		p.UpdateDemand(amount)
		w.fixHeap(sector)
		obs.Logger.Info("product_purchased",
			"product_id", id, "day", day, "amount", amount, "demand", p.Demand)
		return
	}
}

// DeleteProduct removes the product with the given id from its addressed
// sector: swap it to the last slot, drop the slot, then repair heap order
// around the vacated position. Unknown ids are ignored.
func (w *Warehouse) DeleteProduct(id int) {
	sector := sectorIndex(id)
	s := w.sectors[sector]
	for i := 1; i <= s.Size(); i++ {
		p := s.Get(i)
		if p == nil || p.ID != id {
			continue
		}
		s.Swap(i, s.Size())
		s.DeleteLast()
		// The displaced slot may need to move either direction, so sink
		// the affected range and then re-swim the whole sector.
		for j := i; j <= s.Size(); j++ {
			s.Sink(j)
		}
		w.fixHeap(sector)
		obs.Logger.Info("product_deleted", "product_id", id, "sector", sector)
		return
	}
}

// BetterAddProduct admits a product without evicting when any sector still
// has room: a full primary sector is followed by a linear probe of the
// subsequent sectors (wrapping modulo SectorCount). Only when the probe
// comes back around empty-handed does it fall back to the evicting
// AddProduct at the primary sector.
func (w *Warehouse) BetterAddProduct(id int, name string, stock, day, demand int) {
	primary := sectorIndex(id)
	if w.sectors[primary].Size() < SectorCapacity {
		w.AddProduct(id, name, stock, day, demand)
		return
	}
	for step := 1; step < SectorCount; step++ {
		probe := (primary + step) % SectorCount
		s := w.sectors[probe]
		if s.Size() < SectorCapacity {
			s.Add(model.NewProduct(id, name, stock, day, demand))
			w.fixHeap(probe)
			obs.Logger.Info("product_probed",
				"product_id", id, "primary_sector", primary, "placed_sector", probe)
			return
		}
	}
	w.AddProduct(id, name, stock, day, demand)
}

// FindProduct locates a product by id, checking the addressed sector first
// and then the rest (BetterAddProduct may have placed it off its primary
// sector). The returned pointer aliases warehouse storage.
func (w *Warehouse) FindProduct(id int) *model.Product {
	primary := sectorIndex(id)
	for step := 0; step < SectorCount; step++ {
		s := w.sectors[(primary+step)%SectorCount]
		for i := 1; i <= s.Size(); i++ {
			if p := s.Get(i); p != nil && p.ID == id {
				return p
			}
		}
	}
	return nil
}

// Sectors exposes the underlying sectors for introspection and tests.
func (w *Warehouse) Sectors() []*Sector { return w.sectors[:] }

// String renders all sectors in order, one per line.
func (w *Warehouse) String() string {
	var b strings.Builder
	b.WriteString("[\n")
	for i := 0; i < SectorCount; i++ {
		b.WriteByte('\t')
		b.WriteString(w.sectors[i].String())
		b.WriteByte('\n')
	}
	b.WriteByte(']')
	return b.String()
}

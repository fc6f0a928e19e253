// Package model defines domain types used by the service.
package model

import "fmt"

// Product represents a single stocked item. Demand accumulates with every
// purchase and is the key sectors order their heaps by.
type Product struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Stock           int    `json:"stock"`
	Day             int    `json:"day"`
	Demand          int    `json:"demand"`
	LastPurchaseDay *int   `json:"last_purchase_day,omitempty"`
}

// NewProduct constructs a product with its creation day and initial demand.
func NewProduct(id int, name string, stock, day, demand int) *Product {
	return &Product{ID: id, Name: name, Stock: stock, Day: day, Demand: demand}
}

// UpdateStock adjusts stock by delta. Delta may be negative.
func (p *Product) UpdateStock(delta int) { p.Stock += delta }

// UpdateDemand adjusts demand by delta.
func (p *Product) UpdateDemand(delta int) { p.Demand += delta }

// RecordPurchase marks the day of the most recent purchase.
func (p *Product) RecordPurchase(day int) {
	d := day
	p.LastPurchaseDay = &d
}

func (p *Product) String() string {
	return fmt.Sprintf("{id: %d, name: %s, stock: %d, day: %d, demand: %d}",
		p.ID, p.Name, p.Stock, p.Day, p.Demand)
}

// Op identifies a warehouse mutation.
type Op string

const (
	OpAdd       Op = "add"
	OpBetterAdd Op = "better_add"
	OpRestock   Op = "restock"
	OpPurchase  Op = "purchase"
	OpDelete    Op = "delete"
)

// Command is a queued mutation request against the warehouse. Only the
// fields relevant to Op are populated.
type Command struct {
	Op        Op     `json:"op"`
	ProductID int    `json:"product_id"`
	Name      string `json:"name,omitempty"`
	Stock     int    `json:"stock,omitempty"`
	Day       int    `json:"day,omitempty"`
	Demand    int    `json:"demand,omitempty"`
	Amount    int    `json:"amount,omitempty"`
	Sequence  uint64 `json:"-"`
	CommandID string `json:"-"`
}

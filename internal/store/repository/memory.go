package repository

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openretail/supermart-sim/internal/model"
	"github.com/openretail/supermart-sim/internal/store"
)

// MemoryRepository serves the store aggregate the loader produced. The
// process owns exactly one of these for its whole lifetime; nothing is
// written back to disk.
type MemoryRepository struct {
	store *model.Store
}

func NewMemoryRepository(st *model.Store) store.Repository {
	return &MemoryRepository{store: st}
}

func (r *MemoryRepository) Name() string  { return r.store.Name }
func (r *MemoryRepository) Hours() string { return r.store.Hours }

func (r *MemoryRepository) MembershipFee() decimal.Decimal { return r.store.MembershipFee }

func (r *MemoryRepository) Funds() decimal.Decimal { return r.store.TotalFunds }

func (r *MemoryRepository) CreditFunds(amount decimal.Decimal) {
	r.store.TotalFunds = r.store.TotalFunds.Add(amount)
}

func (r *MemoryRepository) DebitFunds(amount decimal.Decimal) {
	r.store.TotalFunds = r.store.TotalFunds.Sub(amount)
}

func (r *MemoryRepository) Aisles() []model.Aisle { return r.store.Aisles }

func (r *MemoryRepository) Aisle(index int) (*model.Aisle, bool) {
	if index < 0 || index >= len(r.store.Aisles) {
		return nil, false
	}
	// A nameless aisle is an unused slot from a sparse data file, not a
	// selectable destination.
	if r.store.Aisles[index].Name == "" {
		return nil, false
	}
	return &r.store.Aisles[index], true
}

func (r *MemoryRepository) FindItem(aisleIndex int, name string) (*model.Item, bool) {
	aisle, ok := r.Aisle(aisleIndex)
	if !ok {
		return nil, false
	}
	for i := range aisle.Items {
		if aisle.Items[i].Name == name {
			return &aisle.Items[i], true
		}
	}
	return nil, false
}

func (r *MemoryRepository) DeductStock(aisleIndex int, name string, quantity int) error {
	item, ok := r.FindItem(aisleIndex, name)
	if !ok {
		return fmt.Errorf("no item %q in aisle %d", name, aisleIndex)
	}
	if quantity <= 0 || quantity > item.Quantity {
		return fmt.Errorf("invalid deduction of %d for %q (%d in stock)", quantity, name, item.Quantity)
	}
	item.Quantity -= quantity
	return nil
}

func (r *MemoryRepository) Employees() []model.Employee { return r.store.Employees }

func (r *MemoryRepository) Purchases() []model.CustomerPurchase { return r.store.Purchases }

func (r *MemoryRepository) RecordPurchase(p *model.CustomerPurchase) {
	r.store.Purchases = append(r.store.Purchases, *p)
}

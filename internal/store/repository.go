package store

import (
	"github.com/shopspring/decimal"

	"github.com/openretail/supermart-sim/internal/model"
)

// Repository is the access surface over the single live store aggregate.
// All callers run sequentially; implementations do not need to lock.
type Repository interface {
	Name() string
	Hours() string
	MembershipFee() decimal.Decimal

	Funds() decimal.Decimal
	CreditFunds(amount decimal.Decimal)
	DebitFunds(amount decimal.Decimal)

	Aisles() []model.Aisle
	Aisle(index int) (*model.Aisle, bool)
	FindItem(aisleIndex int, name string) (*model.Item, bool)
	// DeductStock enforces the non-negative stock invariant; it refuses
	// quantities that are not 0 < q <= current stock.
	DeductStock(aisleIndex int, name string, quantity int) error

	Employees() []model.Employee

	Purchases() []model.CustomerPurchase
	RecordPurchase(p *model.CustomerPurchase)
}

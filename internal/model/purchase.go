package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerPurchase is the terminal record of one checkout session. It is
// immutable once the session ends. PurchaseCost is tax-inclusive for
// completed sessions and zero for aborted ones, which is how the sales
// report tells them apart.
type CustomerPurchase struct {
	ID               string
	Name             string
	BoughtMembership bool
	NumberItems      int
	PurchaseCost     decimal.Decimal
	CreatedAt        time.Time
}

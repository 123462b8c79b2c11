package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/openretail/supermart-sim/internal/model"
)

// InvalidKind classifies the recoverable selection mistakes a customer can
// make. None of them end the session; they are reported and the shopping
// loop continues.
type InvalidKind int

const (
	InvalidAisle InvalidKind = iota
	UnknownItem
	OutOfStock
	InvalidQuantity
)

func (k InvalidKind) String() string {
	switch k {
	case InvalidAisle:
		return "invalid_aisle"
	case UnknownItem:
		return "unknown_item"
	case OutOfStock:
		return "out_of_stock"
	case InvalidQuantity:
		return "invalid_quantity"
	default:
		return "unknown"
	}
}

// SessionIO is the interactive channel for one checkout session. The
// engine drives it; the console implements it; tests script it. Every
// prompt method may fail when the underlying input is exhausted, which
// the engine treats as an immediate session abort.
type SessionIO interface {
	CustomerName() (string, error)
	// OfferMembership asks the yes/no enrollment question. Only an
	// explicit yes enrolls; any other answer declines for the session.
	OfferMembership(fee decimal.Decimal) (bool, error)
	WelcomeBack(name string)

	ShowCartTotal(total decimal.Decimal)
	ShowAisles(aisles []model.Aisle)
	// AisleIndex returns the chosen aisle, or -1 to finish shopping.
	AisleIndex() (int, error)
	ShowItems(index int, aisle *model.Aisle)
	ItemName() (string, error)
	Quantity() (int, error)

	ReportInvalid(kind InvalidKind, detail string)
	ShowFinalTotal(total decimal.Decimal)
}

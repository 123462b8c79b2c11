package backoffice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/openretail/supermart-sim/internal/backoffice/dto"
)

// ErrInsufficientFunds means payroll would push store funds negative. No
// partial payroll is ever disbursed.
var ErrInsufficientFunds = errors.New("insufficient funds to cover payroll")

// UseCase covers the employee-menu operations over store aggregates.
type UseCase interface {
	TotalFunds(ctx context.Context) decimal.Decimal
	// TotalSales aggregates the tax-exclusive value of all completed
	// purchases; aborted sessions (non-positive cost) are excluded.
	TotalSales(ctx context.Context) *dto.SalesReport
	// PayEmployees disburses every salary at once or nothing at all.
	PayEmployees(ctx context.Context) (*dto.PayrollResult, error)
	// ClearMembers wipes the roster and reports how many were removed.
	ClearMembers(ctx context.Context) int
}

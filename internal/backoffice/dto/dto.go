package dto

import "github.com/shopspring/decimal"

type SalesReport struct {
	TotalSales decimal.Decimal
	Completed  int
	Excluded   int // aborted or empty sessions, recorded with zero cost
}

type PayrollResult struct {
	EmployeesPaid  int
	TotalSalaries  decimal.Decimal
	RemainingFunds decimal.Decimal
}

package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/openretail/supermart-sim/internal/backoffice"
	"github.com/openretail/supermart-sim/internal/backoffice/dto"
	"github.com/openretail/supermart-sim/internal/logger"
	"github.com/openretail/supermart-sim/internal/membership"
	"github.com/openretail/supermart-sim/internal/store"
)

var one = decimal.NewFromInt(1)

type backofficeUseCase struct {
	repo    store.Repository
	members membership.Directory
	taxRate decimal.Decimal
	logger  logger.ZapLogger
}

func NewBackofficeUseCase(repo store.Repository, members membership.Directory, taxRate decimal.Decimal, log logger.ZapLogger) backoffice.UseCase {
	return &backofficeUseCase{
		repo:    repo,
		members: members,
		taxRate: taxRate,
		logger:  log,
	}
}

func (uc *backofficeUseCase) TotalFunds(ctx context.Context) decimal.Decimal {
	return uc.repo.Funds()
}

func (uc *backofficeUseCase) TotalSales(ctx context.Context) *dto.SalesReport {
	report := &dto.SalesReport{TotalSales: decimal.Zero}
	divisor := one.Add(uc.taxRate)

	for _, p := range uc.repo.Purchases() {
		if !p.PurchaseCost.IsPositive() {
			report.Excluded++
			continue
		}
		report.TotalSales = report.TotalSales.Add(p.PurchaseCost.Div(divisor))
		report.Completed++
	}

	return report
}

func (uc *backofficeUseCase) PayEmployees(ctx context.Context) (*dto.PayrollResult, error) {
	employees := uc.repo.Employees()

	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.Salary)
	}

	if uc.repo.Funds().LessThan(total) {
		uc.logger.Warn("payroll rejected",
			zap.String("total_salaries", total.StringFixed(2)),
			zap.String("funds", uc.repo.Funds().StringFixed(2)),
		)
		return nil, backoffice.ErrInsufficientFunds
	}

	uc.repo.DebitFunds(total)
	uc.logger.Info("payroll disbursed",
		zap.Int("employees", len(employees)),
		zap.String("total_salaries", total.StringFixed(2)),
	)

	return &dto.PayrollResult{
		EmployeesPaid:  len(employees),
		TotalSalaries:  total,
		RemainingFunds: uc.repo.Funds(),
	}, nil
}

func (uc *backofficeUseCase) ClearMembers(ctx context.Context) int {
	cleared := uc.members.Clear()
	uc.logger.Info("member roster cleared", zap.Int("removed", cleared))
	return cleared
}

package console

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backofficeUC "github.com/openretail/supermart-sim/internal/backoffice/usecase"
	checkoutUC "github.com/openretail/supermart-sim/internal/checkout/usecase"
	"github.com/openretail/supermart-sim/internal/logger"
	"github.com/openretail/supermart-sim/internal/membership"
	"github.com/openretail/supermart-sim/internal/model"
	"github.com/openretail/supermart-sim/internal/store"
	"github.com/openretail/supermart-sim/internal/store/repository"
)

func newTestApp(input string, st *model.Store) (*App, store.Repository, func() string) {
	repo := repository.NewMemoryRepository(st)
	members := membership.NewStoreDirectory(st)
	taxRate := decimal.RequireFromString("0.08")
	log := logger.NewNop()

	in, out := newIO(input)
	app := NewApp(repo,
		checkoutUC.NewCheckoutUseCase(repo, members, taxRate, log),
		backofficeUC.NewBackofficeUseCase(repo, members, taxRate, log),
		log, in, out)
	return app, repo, func() string { return out.String() }
}

func scriptStore() *model.Store {
	return &model.Store{
		Name:          "Testmart",
		Hours:         "Mon-Sun 6am-10pm",
		MembershipFee: decimal.RequireFromString("20.00"),
		TotalFunds:    decimal.RequireFromString("400.00"),
		Aisles: []model.Aisle{
			{Name: "Produce", Items: []model.Item{
				{
					Name:         "Apple",
					Quantity:     10,
					Wholesale:    decimal.RequireFromString("0.50"),
					RegularPrice: decimal.RequireFromString("1.00"),
					MemberPrice:  decimal.RequireFromString("0.80"),
				},
			}},
		},
		Employees: []model.Employee{
			{ID: "100", Name: "John Smith", Salary: decimal.RequireFromString("500.00")},
		},
	}
}

// Drives a whole session through the real wiring: one checkout, then the
// employee menu, then exit.
func TestAppRunFullSession(t *testing.T) {
	script := "4\n" + // checkout
		"Ava\nn\n" + // name, decline membership
		"0\nApple\n3\n" + // one line item
		"-1\n" + // finish shopping
		"5\n" + // employee menu
		"1\n" + // total funds
		"2\n" + // total sales
		"3\n" + // payroll (insufficient: 401.50 < 500)
		"-1\n" + // leave employee menu
		"-1\n" // exit program

	app, repo, output := newTestApp(script, scriptStore())

	err := app.Run(context.Background())
	require.NoError(t, err)

	text := output()

	assert.Contains(t, text, "Your total is")
	assert.Contains(t, text, "$3.24")
	assert.Contains(t, text, "Funds: $401.50")
	assert.Contains(t, text, "Total sales: $3.00")
	assert.Contains(t, text, "Insufficient funds to pay employees.")

	// Payroll failed, so funds keep the checkout profit only.
	assert.True(t, repo.Funds().Equal(decimal.RequireFromString("401.50")),
		"funds %s", repo.Funds())
	require.Len(t, repo.Purchases(), 1)
	assert.Equal(t, "Ava", repo.Purchases()[0].Name)
}

func TestAppRunExitsOnExhaustedInput(t *testing.T) {
	app, _, _ := newTestApp("", scriptStore())
	assert.NoError(t, app.Run(context.Background()))
}

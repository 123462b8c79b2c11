package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openretail/supermart-sim/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedStore() *model.Store {
	return &model.Store{
		Name:       "Testmart",
		Hours:      "9-5",
		TotalFunds: dec("50.00"),
		Aisles: []model.Aisle{
			{Name: "Produce", Items: []model.Item{
				{Name: "Apple", Quantity: 4, Wholesale: dec("0.50"), RegularPrice: dec("1.00"), MemberPrice: dec("0.80")},
			}},
			{Name: "Dairy"},
			{Name: ""},
		},
	}
}

func TestAisleBounds(t *testing.T) {
	repo := NewMemoryRepository(seedStore())

	aisle, ok := repo.Aisle(0)
	require.True(t, ok)
	assert.Equal(t, "Produce", aisle.Name)

	_, ok = repo.Aisle(-1)
	assert.False(t, ok)
	_, ok = repo.Aisle(2)
	assert.False(t, ok, "nameless aisle slots are unselectable")
	_, ok = repo.Aisle(3)
	assert.False(t, ok)
}

func TestFindItemMatchesExactName(t *testing.T) {
	repo := NewMemoryRepository(seedStore())

	item, ok := repo.FindItem(0, "Apple")
	require.True(t, ok)
	assert.Equal(t, 4, item.Quantity)

	_, ok = repo.FindItem(0, "apple")
	assert.False(t, ok)
	_, ok = repo.FindItem(1, "Apple")
	assert.False(t, ok)
	_, ok = repo.FindItem(9, "Apple")
	assert.False(t, ok)
}

func TestDeductStockEnforcesBounds(t *testing.T) {
	repo := NewMemoryRepository(seedStore())

	require.NoError(t, repo.DeductStock(0, "Apple", 3))
	item, _ := repo.FindItem(0, "Apple")
	assert.Equal(t, 1, item.Quantity)

	assert.Error(t, repo.DeductStock(0, "Apple", 2), "oversell must be refused")
	assert.Error(t, repo.DeductStock(0, "Apple", 0))
	assert.Error(t, repo.DeductStock(0, "Apple", -1))
	assert.Error(t, repo.DeductStock(0, "Durian", 1))

	// Failed deductions never touch stock.
	item, _ = repo.FindItem(0, "Apple")
	assert.Equal(t, 1, item.Quantity)
}

func TestFundsArithmetic(t *testing.T) {
	repo := NewMemoryRepository(seedStore())

	repo.CreditFunds(dec("1.50"))
	assert.True(t, repo.Funds().Equal(dec("51.50")))

	repo.DebitFunds(dec("51.00"))
	assert.True(t, repo.Funds().Equal(dec("0.50")))
}

func TestRecordPurchaseAppendsToLog(t *testing.T) {
	repo := NewMemoryRepository(seedStore())

	repo.RecordPurchase(&model.CustomerPurchase{ID: "p1", Name: "Ava", PurchaseCost: dec("3.24")})
	repo.RecordPurchase(&model.CustomerPurchase{ID: "p2", Name: "Ben"})

	purchases := repo.Purchases()
	require.Len(t, purchases, 2)
	assert.Equal(t, "p1", purchases[0].ID)
	assert.Equal(t, "p2", purchases[1].ID)
}

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openretail/supermart-sim/internal/logger"
)

func TestLoadParsesStoreSnapshot(t *testing.T) {
	l := NewFileLoader(logger.NewNop())

	st, err := l.Load(filepath.Join("testdata", "supermart.txt"))
	require.NoError(t, err)

	assert.Equal(t, "Frys Food and Drug", st.Name)
	assert.Equal(t, "Mon-Sun 6am-10pm", st.Hours)
	assert.Equal(t, "1000", st.TotalFunds.String())
	assert.Equal(t, "19.99", st.MembershipFee.String())

	require.Len(t, st.Aisles, 2)
	assert.Equal(t, "Produce", st.Aisles[0].Name)
	assert.Equal(t, "Dairy", st.Aisles[1].Name)

	require.Len(t, st.Aisles[0].Items, 2)
	apples := st.Aisles[0].Items[0]
	assert.Equal(t, "Red Apples", apples.Name, "underscores become spaces")
	assert.Equal(t, DefaultStock, apples.Quantity)
	assert.Equal(t, "0.5", apples.Wholesale.String())
	assert.Equal(t, "1", apples.RegularPrice.String())
	assert.Equal(t, "0.8", apples.MemberPrice.String())

	require.Len(t, st.Aisles[1].Items, 1)
	assert.Equal(t, "Whole Milk", st.Aisles[1].Items[0].Name)

	require.Len(t, st.Employees, 2)
	assert.Equal(t, "John Smith", st.Employees[0].Name)
	assert.Equal(t, "100", st.Employees[0].ID)
	assert.Equal(t, "500", st.Employees[0].Salary.String())
	assert.Equal(t, "Jane Doe", st.Employees[1].Name)
}

func TestLoadMissingFile(t *testing.T) {
	l := NewFileLoader(logger.NewNop())

	_, err := l.Load(filepath.Join("testdata", "nope.txt"))
	assert.Error(t, err)
}

func TestLoadMalformedAmountDegradesToZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	data := "Corner Shop\n24/7\nnot-a-number\n5.00\n*Aisle Information*\nAisle 0: Misc\nSoap junk 2.00 1.50\n############################\n*Employee Information*\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	st, err := NewFileLoader(logger.NewNop()).Load(path)
	require.NoError(t, err)

	assert.True(t, st.TotalFunds.IsZero(), "garbage funds degrade to zero")
	require.Len(t, st.Aisles, 1)
	require.Len(t, st.Aisles[0].Items, 1)
	soap := st.Aisles[0].Items[0]
	assert.Equal(t, "Soap", soap.Name)
	assert.True(t, soap.Wholesale.IsZero())
	assert.Equal(t, "2", soap.RegularPrice.String())
}

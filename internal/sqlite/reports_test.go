package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasteops/mealweek/pkg/types"
)

// reportFixture seeds two customers ordering across two weeks:
//
//	Alice, W1: 2x Rice Bowl          (total 20)
//	Alice, W2: 1x Feijoada           (total 14)
//	Bob,   W1: 3x Rice + 1x Feijoada (total 44)
type reportFixture struct {
	w1, w2      int64
	alice, bob  int64
	rice, beans int64
}

func setupReportFixture(t *testing.T, s *Store) reportFixture {
	t.Helper()
	var (
		f   reportFixture
		err error
	)
	f.w1, err = s.AddWeek("W1", nil, nil)
	require.NoError(t, err)
	f.w2, err = s.AddWeek("W2", nil, nil)
	require.NoError(t, err)
	f.alice, err = s.AddCustomer(types.Customer{Name: "Alice", Phone: "555-1"})
	require.NoError(t, err)
	f.bob, err = s.AddCustomer(types.Customer{Name: "Bob", Phone: "555-2"})
	require.NoError(t, err)
	f.rice, err = s.AddMenuItem(types.MenuItem{Name: "Rice Bowl", Price: 10.00, Available: true})
	require.NoError(t, err)
	f.beans, err = s.AddMenuItem(types.MenuItem{Name: "Feijoada", Price: 14.00, Available: true})
	require.NoError(t, err)

	_, err = s.CreateOrder(f.alice, f.w1, 20.00, "Pix", "", "",
		[]types.NewOrderLine{{MenuItemID: f.rice, Quantity: 2, UnitPrice: 10.00}})
	require.NoError(t, err)
	_, err = s.CreateOrder(f.alice, f.w2, 14.00, "Pix", "", "",
		[]types.NewOrderLine{{MenuItemID: f.beans, Quantity: 1, UnitPrice: 14.00}})
	require.NoError(t, err)
	_, err = s.CreateOrder(f.bob, f.w1, 44.00, "Cash", "", "",
		[]types.NewOrderLine{
			{MenuItemID: f.rice, Quantity: 3, UnitPrice: 10.00},
			{MenuItemID: f.beans, Quantity: 1, UnitPrice: 14.00},
		})
	require.NoError(t, err)
	return f
}

func TestSalesByCustomer(t *testing.T) {
	s := setupStore(t)
	f := setupReportFixture(t, s)

	rows, err := s.SalesByCustomer(0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Ordered by total spent descending: Bob 44 over Alice 34.
	assert.Equal(t, types.CustomerSales{CustomerName: "Bob", OrderCount: 1, TotalSpent: 44.00}, rows[0])
	assert.Equal(t, types.CustomerSales{CustomerName: "Alice", OrderCount: 2, TotalSpent: 34.00}, rows[1])

	// Week filter narrows to W1 orders only.
	rows, err = s.SalesByCustomer(f.w1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, types.CustomerSales{CustomerName: "Bob", OrderCount: 1, TotalSpent: 44.00}, rows[0])
	assert.Equal(t, types.CustomerSales{CustomerName: "Alice", OrderCount: 1, TotalSpent: 20.00}, rows[1])
}

func TestSalesByCustomer_DeletedCustomerBucket(t *testing.T) {
	s := setupStore(t)
	f := setupReportFixture(t, s)

	require.NoError(t, s.DeleteCustomer(f.bob))

	rows, err := s.SalesByCustomer(0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, types.DeletedCustomerName, rows[0].CustomerName)
	assert.Equal(t, 44.00, rows[0].TotalSpent)
}

func TestItemsByCustomer(t *testing.T) {
	s := setupStore(t)
	f := setupReportFixture(t, s)

	rows, err := s.ItemsByCustomer(f.alice, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, types.ItemQuantity{ItemName: "Rice Bowl", TotalQuantity: 2}, rows[0])
	assert.Equal(t, types.ItemQuantity{ItemName: "Feijoada", TotalQuantity: 1}, rows[1])

	// Scoped to W2 only the Feijoada order remains.
	rows, err = s.ItemsByCustomer(f.alice, f.w2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, types.ItemQuantity{ItemName: "Feijoada", TotalQuantity: 1}, rows[0])

	_, err = s.ItemsByCustomer(0, 0)
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestDailySales(t *testing.T) {
	s := setupStore(t)
	f := setupReportFixture(t, s)

	today := time.Now().UTC().Format("2006-01-02")

	rows, err := s.DailySales(0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, today, rows[0].Day)
	assert.Equal(t, 3, rows[0].OrderCount)
	assert.InDelta(t, 78.00, rows[0].TotalSales, 0.001)

	rows, err = s.DailySales(f.w2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].OrderCount)
	assert.InDelta(t, 14.00, rows[0].TotalSales, 0.001)
}

func TestBestSellingItems(t *testing.T) {
	s := setupStore(t)
	f := setupReportFixture(t, s)

	rows, err := s.BestSellingItems(0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, types.ItemQuantity{ItemName: "Rice Bowl", TotalQuantity: 5}, rows[0])
	assert.Equal(t, types.ItemQuantity{ItemName: "Feijoada", TotalQuantity: 2}, rows[1])

	// Week filter joins through orders.
	rows, err = s.BestSellingItems(f.w2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, types.ItemQuantity{ItemName: "Feijoada", TotalQuantity: 1}, rows[0])
}

func TestBestSellingItems_DeletedItemBucket(t *testing.T) {
	s := setupStore(t)
	f := setupReportFixture(t, s)

	require.NoError(t, s.DeleteMenuItem(f.rice))

	rows, err := s.BestSellingItems(0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, types.ItemQuantity{ItemName: types.DeletedItemName, TotalQuantity: 5}, rows[0])
}

package types

// CustomerSales is one row of the sales-by-customer report.
type CustomerSales struct {
	CustomerName string
	OrderCount   int
	TotalSpent   float64
}

// ItemQuantity is one row of the items-by-customer and best-selling-items
// reports.
type ItemQuantity struct {
	ItemName      string
	TotalQuantity int
}

// DailySales is one row of the daily sales report. Day is the calendar
// day of order creation in "2006-01-02" form.
type DailySales struct {
	Day        string
	OrderCount int
	TotalSales float64
}

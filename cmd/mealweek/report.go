// Reporting commands over the order history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagReportWeek     int64
	flagReportCustomer int64
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate reports over the order history",
}

var reportSalesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Order count and total spent per customer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.SalesByCustomer(flagReportWeek)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(rows)
		}
		for _, r := range rows {
			fmt.Printf("%s\t%d orders\t%.2f\n", r.CustomerName, r.OrderCount, r.TotalSpent)
		}
		return nil
	},
}

var reportItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Item quantities ordered by one customer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.ItemsByCustomer(flagReportCustomer, flagReportWeek)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(rows)
		}
		for _, r := range rows {
			fmt.Printf("%s\t%d\n", r.ItemName, r.TotalQuantity)
		}
		return nil
	},
}

var reportDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Order count and total sales per calendar day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.DailySales(flagReportWeek)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(rows)
		}
		for _, r := range rows {
			fmt.Printf("%s\t%d orders\t%.2f\n", r.Day, r.OrderCount, r.TotalSales)
		}
		return nil
	},
}

var reportBestCmd = &cobra.Command{
	Use:   "best",
	Short: "Best-selling items by total quantity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.BestSellingItems(flagReportWeek)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(rows)
		}
		for _, r := range rows {
			fmt.Printf("%s\t%d\n", r.ItemName, r.TotalQuantity)
		}
		return nil
	},
}

func init() {
	reportSalesCmd.Flags().Int64Var(&flagReportWeek, "week", 0, "restrict to one delivery week")
	reportItemsCmd.Flags().Int64Var(&flagReportCustomer, "customer", 0, "customer ID")
	reportItemsCmd.Flags().Int64Var(&flagReportWeek, "week", 0, "restrict to one delivery week")
	reportItemsCmd.MarkFlagRequired("customer")
	reportDailyCmd.Flags().Int64Var(&flagReportWeek, "week", 0, "restrict to one delivery week")
	reportBestCmd.Flags().Int64Var(&flagReportWeek, "week", 0, "restrict to one delivery week")

	reportCmd.AddCommand(reportSalesCmd)
	reportCmd.AddCommand(reportItemsCmd)
	reportCmd.AddCommand(reportDailyCmd)
	reportCmd.AddCommand(reportBestCmd)
}

// Order commands. Order creation assembles a cart from the available
// menu so unit prices are snapshotted from the current menu and the
// stored total always matches the line sum.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasteops/mealweek/pkg/session"
	"github.com/tasteops/mealweek/pkg/types"
)

var (
	flagOrderCustomer  int64
	flagOrderWeek      int64
	flagOrderItems     []string
	flagOrderPayMethod string
	flagOrderPayStatus string
	flagOrderDelivery  string
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage orders",
}

var orderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an order from available menu items",
	Long: `Create inserts an order with one line per --item, all in a single
transaction. Items must be flagged available this week; the unit price of
each line is snapshotted from the current menu, so later price changes
never alter this order.

Example:
  mealweek order create --customer 3 --week 1 --item 5:2 --item 8:1 --pay-method Pix`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(flagOrderItems) == 0 {
			return fmt.Errorf("at least one --item is required")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		available, err := store.ListAvailableMenuItems()
		if err != nil {
			return err
		}
		byID := make(map[int64]types.MenuItem, len(available))
		for _, m := range available {
			byID[m.MenuItemID] = m
		}

		var cart session.Session
		for _, spec := range flagOrderItems {
			itemID, quantity, err := parseLineSpec(spec)
			if err != nil {
				return err
			}
			item, ok := byID[itemID]
			if !ok {
				return fmt.Errorf("menu item %d is not available this week", itemID)
			}
			cart.AddToCart(item.MenuItemID, item.Name, quantity, item.Price)
		}

		lines := make([]types.NewOrderLine, 0, len(cart.Cart))
		for _, l := range cart.Cart {
			lines = append(lines, types.NewOrderLine{
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
			})
		}

		orderID, err := store.CreateOrder(
			flagOrderCustomer, flagOrderWeek, cart.Total(),
			flagOrderPayMethod, flagOrderPayStatus, flagOrderDelivery, lines,
		)
		if err != nil {
			return err
		}
		fmt.Printf("order %d created, total %.2f\n", orderID, cart.Total())
		return nil
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		orders, err := store.ListOrders(flagOrderWeek)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(orders)
		}
		for _, o := range orders {
			fmt.Printf("%d\t%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
				o.OrderID, o.CreatedAt.Format("2006-01-02 15:04"),
				o.WeekName, o.CustomerName, o.Total,
				o.PaymentMethod, o.PaymentStatus, o.DeliveryStatus)
		}
		return nil
	},
}

var orderLinesCmd = &cobra.Command{
	Use:   "lines <order-id>",
	Short: "Show the lines of one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		lines, err := store.GetOrderLines(id)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(lines)
		}
		for _, l := range lines {
			fmt.Printf("%dx\t%s\t%.2f\n", l.Quantity, l.ItemName, l.UnitPrice)
		}
		return nil
	},
}

var orderStatusCmd = &cobra.Command{
	Use:   "status <order-id>",
	Short: "Update payment and delivery status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		err = store.UpdateOrderStatus(id, flagOrderPayStatus, flagOrderDelivery)
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("order %d not found", id)
		}
		if err != nil {
			return err
		}
		fmt.Printf("order %d status updated\n", id)
		return nil
	},
}

var orderDeleteCmd = &cobra.Command{
	Use:   "delete <order-id>",
	Short: "Delete an order and all of its lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteOrder(id); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("order %d not found", id)
			}
			return err
		}
		fmt.Printf("order %d deleted\n", id)
		return nil
	},
}

func init() {
	orderCreateCmd.Flags().Int64Var(&flagOrderCustomer, "customer", 0, "customer ID")
	orderCreateCmd.Flags().Int64Var(&flagOrderWeek, "week", 0, "delivery week ID")
	orderCreateCmd.Flags().StringArrayVar(&flagOrderItems, "item", nil, "order line as ITEMID:QTY (repeatable)")
	orderCreateCmd.Flags().StringVar(&flagOrderPayMethod, "pay-method", "", "payment method (e.g. Pix, Cash)")
	orderCreateCmd.Flags().StringVar(&flagOrderPayStatus, "pay-status", types.PaymentPending, "payment status")
	orderCreateCmd.Flags().StringVar(&flagOrderDelivery, "delivery", types.DeliveryPending, "delivery status")
	orderCreateCmd.MarkFlagRequired("customer")
	orderCreateCmd.MarkFlagRequired("week")

	orderListCmd.Flags().Int64Var(&flagOrderWeek, "week", 0, "restrict to one delivery week")

	orderStatusCmd.Flags().StringVar(&flagOrderPayStatus, "pay-status", types.PaymentPending, "payment status")
	orderStatusCmd.Flags().StringVar(&flagOrderDelivery, "delivery", types.DeliveryPending, "delivery status")

	orderCmd.AddCommand(orderCreateCmd)
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderLinesCmd)
	orderCmd.AddCommand(orderStatusCmd)
	orderCmd.AddCommand(orderDeleteCmd)
}

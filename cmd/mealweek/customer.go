// Customer commands.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasteops/mealweek/pkg/types"
)

var (
	flagCustomerName       string
	flagCustomerAddress    string
	flagCustomerComplement string
	flagCustomerPhone      string
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a customer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.AddCustomer(types.Customer{
			Name:       flagCustomerName,
			Address:    flagCustomerAddress,
			Complement: flagCustomerComplement,
			Phone:      flagCustomerPhone,
		})
		if errors.Is(err, types.ErrDuplicatePhone) {
			return fmt.Errorf("phone %q already registered", flagCustomerPhone)
		}
		if err != nil {
			return err
		}
		fmt.Printf("customer %d added\n", id)
		return nil
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		customers, err := store.ListCustomers()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(customers)
		}
		for _, c := range customers {
			fmt.Printf("%d\t%s\t%s\t%s\n", c.CustomerID, c.Name, c.Phone, c.Address)
		}
		return nil
	},
}

var customerGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one customer",
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

		c, err := store.GetCustomer(id)
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("customer %d not found", id)
		}
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(c)
		}
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", c.CustomerID, c.Name, c.Phone, c.Address, c.Complement)
		return nil
	},
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a customer",
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

		err = store.UpdateCustomer(types.Customer{
			CustomerID: id,
			Name:       flagCustomerName,
			Address:    flagCustomerAddress,
			Complement: flagCustomerComplement,
			Phone:      flagCustomerPhone,
		})
		if errors.Is(err, types.ErrDuplicatePhone) {
			return fmt.Errorf("phone %q belongs to another customer", flagCustomerPhone)
		}
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("customer %d not found", id)
		}
		if err != nil {
			return err
		}
		fmt.Printf("customer %d updated\n", id)
		return nil
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer (their orders keep their history)",
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

		if err := store.DeleteCustomer(id); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("customer %d not found", id)
			}
			return err
		}
		fmt.Printf("customer %d deleted\n", id)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{customerAddCmd, customerUpdateCmd} {
		cmd.Flags().StringVar(&flagCustomerName, "name", "", "customer name")
		cmd.Flags().StringVar(&flagCustomerAddress, "address", "", "street address")
		cmd.Flags().StringVar(&flagCustomerComplement, "complement", "", "address complement / delivery notes")
		cmd.Flags().StringVar(&flagCustomerPhone, "phone", "", "phone number (unique)")
		cmd.MarkFlagRequired("name")
	}
	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerGetCmd)
	customerCmd.AddCommand(customerUpdateCmd)
	customerCmd.AddCommand(customerDeleteCmd)
}

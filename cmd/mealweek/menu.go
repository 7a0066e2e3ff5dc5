// Menu item commands.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasteops/mealweek/internal/images"
	"github.com/tasteops/mealweek/pkg/types"
)

var (
	flagItemName        string
	flagItemDescription string
	flagItemPrice       float64
	flagItemCategory    string
	flagItemAvailable   bool
	flagItemImage       string
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage the menu",
}

// storeItemImage copies the --image file into the data directory and
// returns the stored relative path, or "" when no image was given.
func storeItemImage(dataDir string) (string, error) {
	if flagItemImage == "" {
		return "", nil
	}
	return images.Store(dataDir, flagItemImage)
}

var menuAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a menu item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagItemPrice <= 0 {
			return fmt.Errorf("price must be positive")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		imagePath, err := storeItemImage(store.DataDir())
		if err != nil {
			return err
		}

		id, err := store.AddMenuItem(types.MenuItem{
			Name:        flagItemName,
			Description: flagItemDescription,
			Price:       flagItemPrice,
			Category:    flagItemCategory,
			Available:   flagItemAvailable,
			ImagePath:   imagePath,
		})
		if errors.Is(err, types.ErrDuplicateName) {
			return fmt.Errorf("menu item %q already exists", flagItemName)
		}
		if err != nil {
			return err
		}
		fmt.Printf("menu item %d added\n", id)
		return nil
	},
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the full menu by name",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runMenuList(false) },
}

var menuAvailableCmd = &cobra.Command{
	Use:   "available",
	Short: "List items available this week",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runMenuList(true) },
}

func runMenuList(availableOnly bool) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var items []types.MenuItem
	if availableOnly {
		items, err = store.ListAvailableMenuItems()
	} else {
		items, err = store.ListMenuItems()
	}
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(items)
	}
	for _, m := range items {
		mark := " "
		if m.Available {
			mark = "*"
		}
		fmt.Printf("%d\t%s %s\t%.2f\t%s\n", m.MenuItemID, mark, m.Name, m.Price, m.Category)
	}
	return nil
}

var menuUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if flagItemPrice <= 0 {
			return fmt.Errorf("price must be positive")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		current, err := store.GetMenuItem(id)
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("menu item %d not found", id)
		}
		if err != nil {
			return err
		}

		imagePath := current.ImagePath
		if flagItemImage != "" {
			if imagePath, err = storeItemImage(store.DataDir()); err != nil {
				return err
			}
			if err := images.Remove(store.DataDir(), current.ImagePath); err != nil {
				return err
			}
		}

		err = store.UpdateMenuItem(types.MenuItem{
			MenuItemID:  id,
			Name:        flagItemName,
			Description: flagItemDescription,
			Price:       flagItemPrice,
			Category:    flagItemCategory,
			Available:   flagItemAvailable,
			ImagePath:   imagePath,
		})
		if errors.Is(err, types.ErrDuplicateName) {
			return fmt.Errorf("menu item %q already exists", flagItemName)
		}
		if err != nil {
			return err
		}
		fmt.Printf("menu item %d updated\n", id)
		return nil
	},
}

var menuDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a menu item (order history keeps its price snapshots)",
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

		item, err := store.GetMenuItem(id)
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("menu item %d not found", id)
		}
		if err != nil {
			return err
		}

		if err := store.DeleteMenuItem(id); err != nil {
			return err
		}
		if err := images.Remove(store.DataDir(), item.ImagePath); err != nil {
			return err
		}
		fmt.Printf("menu item %d deleted\n", id)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{menuAddCmd, menuUpdateCmd} {
		cmd.Flags().StringVar(&flagItemName, "name", "", "item name (unique)")
		cmd.Flags().StringVar(&flagItemDescription, "description", "", "item description")
		cmd.Flags().Float64Var(&flagItemPrice, "price", 0, "unit price")
		cmd.Flags().StringVar(&flagItemCategory, "category", "", "item category")
		cmd.Flags().BoolVar(&flagItemAvailable, "available", true, "available this week")
		cmd.Flags().StringVar(&flagItemImage, "image", "", "path to an item photo to store")
		cmd.MarkFlagRequired("name")
		cmd.MarkFlagRequired("price")
	}
	menuCmd.AddCommand(menuAddCmd)
	menuCmd.AddCommand(menuListCmd)
	menuCmd.AddCommand(menuAvailableCmd)
	menuCmd.AddCommand(menuUpdateCmd)
	menuCmd.AddCommand(menuDeleteCmd)
}

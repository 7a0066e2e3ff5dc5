// Week commands: the delivery periods orders are batched under.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasteops/mealweek/pkg/types"
)

var (
	flagWeekStart string
	flagWeekEnd   string
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Manage delivery weeks",
}

var weekAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a delivery week",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateFlag(flagWeekStart)
		if err != nil {
			return err
		}
		end, err := parseDateFlag(flagWeekEnd)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.AddWeek(args[0], start, end)
		if errors.Is(err, types.ErrDuplicateName) {
			return fmt.Errorf("week %q already exists", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Printf("week %d added\n", id)
		return nil
	},
}

var weekListCmd = &cobra.Command{
	Use:   "list",
	Short: "List delivery weeks, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		weeks, err := store.ListWeeks()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(weeks)
		}
		for _, w := range weeks {
			fmt.Printf("%d\t%s\t%s\t%s\n", w.WeekID, w.Name, formatDate(w.StartDate), formatDate(w.EndDate))
		}
		return nil
	},
}

var weekUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Update a delivery week",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		start, err := parseDateFlag(flagWeekStart)
		if err != nil {
			return err
		}
		end, err := parseDateFlag(flagWeekEnd)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		err = store.UpdateWeek(id, args[1], start, end)
		if errors.Is(err, types.ErrDuplicateName) {
			return fmt.Errorf("week %q already exists", args[1])
		}
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("week %d not found", id)
		}
		if err != nil {
			return err
		}
		fmt.Printf("week %d updated\n", id)
		return nil
	},
}

var weekDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a delivery week (orders keep their history)",
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

		if err := store.DeleteWeek(id); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("week %d not found", id)
			}
			return err
		}
		fmt.Printf("week %d deleted\n", id)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{weekAddCmd, weekUpdateCmd} {
		cmd.Flags().StringVar(&flagWeekStart, "start", "", "start date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&flagWeekEnd, "end", "", "end date (YYYY-MM-DD)")
	}
	weekCmd.AddCommand(weekAddCmd)
	weekCmd.AddCommand(weekListCmd)
	weekCmd.AddCommand(weekUpdateCmd)
	weekCmd.AddCommand(weekDeleteCmd)
}

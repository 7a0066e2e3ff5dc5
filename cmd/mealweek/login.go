// Login and account commands for the mealweek CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasteops/mealweek/pkg/session"
	"github.com/tasteops/mealweek/pkg/types"
)

var (
	flagUsername string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify operator credentials",
	Long: `Login checks a username/password pair against the credential store.

On a fresh database the default account is admin/admin; add a personal
account with "mealweek user add" afterwards.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if !store.Verify(flagUsername, flagPassword) {
			return fmt.Errorf("invalid username or password")
		}

		var sess session.Session
		sess.Login(flagUsername)
		if flagJSON {
			return printJSON(sess)
		}
		fmt.Printf("logged in as %s\n", sess.Username)
		return nil
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage operator accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an operator account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.AddUser(flagUsername, flagPassword); err != nil {
			if errors.Is(err, types.ErrAlreadyExists) {
				return fmt.Errorf("username %q already exists", flagUsername)
			}
			return err
		}
		fmt.Printf("user %s added\n", flagUsername)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, userAddCmd} {
		cmd.Flags().StringVarP(&flagUsername, "username", "u", "", "account username")
		cmd.Flags().StringVarP(&flagPassword, "password", "p", "", "account password")
		cmd.MarkFlagRequired("username")
		cmd.MarkFlagRequired("password")
	}
	userCmd.AddCommand(userAddCmd)
}

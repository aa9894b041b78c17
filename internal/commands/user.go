package commands

import (
	"github.com/spf13/cobra"
)

func newUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage API users",
	}
	userCmd.AddCommand(newUserAddCommand())
	return userCmd
}

func newUserAddCommand() *cobra.Command {
	var dir, username, password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.identity.Register(username, password); err != nil {
				return err
			}
			cmd.Printf("Registered user %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage remote scopes",
	}
	cmd.PersistentFlags().BoolP("global", "g", false, "Edit the global configuration instead of the scope")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <alias[!]> <host>",
			Short: "Register a remote; a trailing ! marks it primary",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				global, _ := cmd.Flags().GetBool("global")
				if err := c.app.AddRemote(cmd.Context(), args[0], args[1], global); err != nil {
					return err
				}
				newPrinter(cmd.OutOrStdout()).success("added " + args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:     "rm <alias>",
			Aliases: []string{"remove"},
			Short:   "Unregister a remote",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				global, _ := cmd.Flags().GetBool("global")
				if err := c.app.RemoveRemote(cmd.Context(), args[0], global); err != nil {
					return err
				}
				newPrinter(cmd.OutOrStdout()).success("removed " + args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List remotes",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				global, _ := cmd.Flags().GetBool("global")
				remotes, err := c.app.Remotes(cmd.Context(), global)
				if err != nil {
					return err
				}
				newPrinter(cmd.OutOrStdout()).remotes(remotes)
				return nil
			},
		},
	)
	return cmd
}

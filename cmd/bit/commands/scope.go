package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/bit/internal/app"
)

func (c *CLI) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Resolve a bit and its dependency closure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := c.app.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).bits(bits)
			return nil
		},
	}
}

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a bit's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bit, err := c.app.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).bit(bit)
			return nil
		},
	}
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [remote]",
		Aliases: []string{"ls"},
		Short:   "List the bits of the local scope or of a remote",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := ""
			if len(args) == 1 {
				alias = args[0]
			}
			ids, err := c.app.List(cmd.Context(), alias)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).ids(ids)
			return nil
		},
	}
}

func (c *CLI) newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push <ids...>",
		Short: "Send local bits and their local dependencies to a remote",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, _ := cmd.Flags().GetString("remote")
			pushed, err := c.app.Push(cmd.Context(), args, remote)
			p := newPrinter(cmd.OutOrStdout())
			for _, id := range pushed {
				p.success("pushed " + id.String())
			}
			return err
		},
	}
	cmd.Flags().StringP("remote", "r", "", "Remote alias (defaults to the primary remote)")
	return cmd
}

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the local index or a remote's",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, _ := cmd.Flags().GetString("remote")
			reindex, _ := cmd.Flags().GetBool("reindex")
			results, err := c.app.Search(cmd.Context(), args[0], app.SearchOptions{Remote: remote, Reindex: reindex})
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			if len(results) == 0 {
				p.line("no results")
				return nil
			}
			p.results(results)
			return nil
		},
	}
	cmd.Flags().StringP("remote", "r", "", "Search the index of this remote")
	cmd.Flags().Bool("reindex", false, "Rebuild the local index first")
	return cmd
}

func (c *CLI) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [remote]",
		Short: "Report the identity of the local scope or of a remote",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := ""
			if len(args) == 1 {
				alias = args[0]
			}
			desc, err := c.app.Describe(cmd.Context(), alias)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).table(nil, [][]string{{"name", desc.Name}})
			return nil
		},
	}
}

func (c *CLI) newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <id>",
		Short: "Write a bit's archive into the scope's tmp directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Pack(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (c *CLI) newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <archive>",
		Short: "Publish a packed bit into the local scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Upload(cmd.Context(), args[0]); err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).success("uploaded " + args[0])
			return nil
		},
	}
}

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local scope over the bit:// protocol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listen, _ := cmd.Flags().GetString("listen")
			return c.app.Serve(cmd.Context(), listen)
		},
	}
	cmd.Flags().StringP("listen", "l", "127.0.0.1:3000", "Address to listen on")
	return cmd
}

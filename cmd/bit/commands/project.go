package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/bit/internal/app"
	"go.trai.ch/bit/internal/core/domain"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a project, or a bare scope, in path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			bare, _ := cmd.Flags().GetBool("bare")
			name, _ := cmd.Flags().GetString("name")

			root, err := c.app.Init(cmd.Context(), path, app.InitOptions{Bare: bare, Name: name})
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).success("initialized " + root)
			return nil
		},
	}
	cmd.Flags().Bool("bare", false, "Create a scope without a project manifest")
	cmd.Flags().String("name", "", "Scope name of a bare scope (defaults to the directory name)")
	return cmd
}

func (c *CLI) newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <box/name[@version]>",
		Short: "Create an inline component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			withSpec, _ := cmd.Flags().GetBool("specs")
			bit, err := c.app.Create(cmd.Context(), args[0], withSpec)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).success("created " + bit.ID().String())
			return nil
		},
	}
	cmd.Flags().BoolP("specs", "s", false, "Also create a spec file")
	return cmd
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <box/name>",
		Aliases: []string{"rm"},
		Short:   "Delete an inline component",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).success("removed " + args[0])
			return nil
		},
	}
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List the inline components of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bits, err := c.app.ListInline(cmd.Context())
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).bits(bits)
			return nil
		},
	}
}

func (c *CLI) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <box/name>",
		Short: "Publish an inline component into the project's scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := c.app.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.success("exported " + bits[len(bits)-1].ID().String())
			p.bits(bits[:len(bits)-1])
			return nil
		},
	}
}

func (c *CLI) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [ids...]",
		Short: "Write bits and their dependencies into components/",
		Long:  "Write bits and their dependencies into components/. Without ids, the dependencies of the project manifest are imported.",
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := c.app.Import(cmd.Context(), args)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			if len(bits) == 0 {
				p.line("nothing to import")
				return nil
			}
			p.bits(bits)
			return nil
		},
	}
}

func (c *CLI) newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <box/name>",
		Short: "Run an inline component's tester",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Test(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).report(report)
			if !report.Passed {
				return domain.ErrTestsFailed
			}
			return nil
		},
	}
}

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <box/name>",
		Short: "Compile an inline component into its dist directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bit, err := c.app.Build(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).success(fmt.Sprintf("built %s (%d files)", bit.ID(), len(bit.Dist)))
			return nil
		},
	}
}

func (c *CLI) newModifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modify <id>",
		Short: "Check a published bit out as an inline component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bit, err := c.app.Modify(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).success("modifying " + bit.ID().String())
			return nil
		},
	}
}

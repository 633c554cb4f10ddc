package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cumulus13/xcp-go/internal/render"
)

func yellow(p render.Palette, s string) string {
	return p.Yellow + s + p.Reset
}

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "copy <path>",
		Aliases: []string{"c"},
		Short:   "Copy a file or directory into the clipboard",
		Long: `Copy the item into the clipboard. The item also remains in its
current location.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			if err := a.clip.Copy(args[0]); err != nil {
				return err
			}
			if a.cfg.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Copied %s.\n", yellow(palette(cmd), args[0]))
			}
			return nil
		},
	}
}

func newCutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "cut <path>",
		Aliases: []string{"x"},
		Short:   "Move a file or directory into the clipboard",
		Long: `Move the item into the clipboard. The item is removed from its
current location.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			if err := a.clip.Cut(args[0]); err != nil {
				return err
			}
			if a.cfg.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Cut %s.\n", yellow(palette(cmd), args[0]))
			}
			return nil
		},
	}
}

func newPasteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "paste [name]",
		Aliases: []string{"p", "v"},
		Short:   "Paste the clipboard item into the working directory",
		Long: `Copy the item currently in the clipboard to the current working
directory, optionally under a new name. Pasting into an existing directory
places the item inside it; an existing file is only replaced after you
confirm. The clipboard keeps the item, so it can be pasted again.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}

			var dest string
			if len(args) > 0 {
				dest = args[0]
			}
			result, err := a.clip.Paste(dest)
			if err != nil {
				return err
			}

			p := palette(cmd)
			if result.Renamed() {
				fmt.Fprintf(cmd.OutOrStdout(), "Pasted %s as %s.\n", yellow(p, result.Item), yellow(p, result.Dest))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Pasted %s.\n", yellow(p, result.Item))
			}
			return nil
		},
	}
}

func newPeekCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "peek",
		Short: "Print the name of the item in the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			name, err := a.clip.Peek()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func newCleanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clear the clipboard and its backups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			return a.clip.Clean()
		},
	}
}

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cumulus13/xcp-go/internal/render"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the clipboard item and its backups",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			entries, err := a.clip.Entries()
			if err != nil {
				return err
			}
			render.Table(cmd.OutOrStdout(), palette(cmd), a.cfg.RootDir, entries)
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the item in the clipboard",
		Long: `Print the contents of the item in the clipboard. Text files are syntax
highlighted on a terminal, directories are listed and binary files are
summarized.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			path, err := a.clip.CurrentPath()
			if err != nil {
				return err
			}
			color := colorEnabled(cmd.OutOrStdout())
			return render.Show(cmd.OutOrStdout(), a.fs, path, render.NewPalette(color), color)
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print every new clipboard item until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			names, err := a.clip.Watch(ctx)
			if err != nil {
				return err
			}

			p := palette(cmd)
			fmt.Fprintf(cmd.OutOrStdout(), "%sWatching %s (Ctrl+C to stop)%s\n", p.Gray, a.cfg.CurrentDir, p.Reset)
			for name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "📋 %s\n", yellow(p, name))
			}
			return nil
		},
	}
}

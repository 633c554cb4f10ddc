package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cumulus13/xcp-go/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the xcp config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newConfigShowCmd(a), newConfigPathCmd(a), newConfigInitCmd(a))
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}

			p := palette(cmd)
			out := cmd.OutOrStdout()
			settings := a.cfg.AsMap()
			keys := make([]string, 0, len(settings))
			for key := range settings {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			fmt.Fprintf(out, "\n%sCurrent xcp configuration:%s\n\n", p.Bold, p.Reset)
			for _, key := range keys {
				fmt.Fprintf(out, "%s%s:%s %v\n", p.Cyan, key, p.Reset, settings[key])
			}
			fmt.Fprintf(out, "\n%sConfig loaded from:%s %s\n", p.Gray, p.Reset, a.configPath)
			return nil
		},
	}
}

func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.FilePath()
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.resolvedConfigPath())
			return nil
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.resolvedConfigPath()
			p := palette(cmd)

			_, err := os.Stat(path)
			if err == nil && !force {
				fmt.Fprintf(cmd.OutOrStdout(), "%s⚠️  Config file already exists: %s%s\n", p.Yellow, path, p.Reset)
				fmt.Fprintf(cmd.OutOrStdout(), "Use --force to overwrite it.\n")
				return nil
			}
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Config file created: %s%s%s\n", p.Green, path, p.Reset)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

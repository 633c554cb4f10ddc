package cli

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/cumulus13/xcp-go/internal/clipboard"
	"github.com/cumulus13/xcp-go/internal/config"
	"github.com/cumulus13/xcp-go/internal/logging"
	"github.com/cumulus13/xcp-go/internal/render"
	"github.com/cumulus13/xcp-go/internal/version"
)

const (
	groupClipboard = "clipboard"
	groupInspect   = "inspect"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	fs     afero.Fs
	system clipboard.SystemClipboard

	configPath string
	quiet      bool

	cfg    *config.Config
	logger *zap.Logger
	clip   *clipboard.Clipboard
}

// open loads the configuration and builds the logger and clipboard.
func (a *app) open(cmd *cobra.Command) error {
	if a.clip != nil {
		return nil
	}

	cfg := config.Default()
	if a.configPath == "" {
		path, err := cfg.Load()
		if err != nil {
			return err
		}
		a.configPath = path
	} else if err := cfg.LoadFrom(a.configPath); err != nil {
		return err
	}
	if a.quiet {
		cfg.Verbose = false
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Verbose)
	a.logger.Debug("Loaded config", zap.String("path", a.configPath))

	a.clip = clipboard.New(cfg, a.fs, a.logger)
	a.clip.Prompt = clipboard.LinePrompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	a.clip.System = a.system
	return nil
}

// colorEnabled reports whether w is a terminal that should get colors.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func palette(cmd *cobra.Command) render.Palette {
	return render.NewPalette(colorEnabled(cmd.OutOrStdout()))
}

// NewRootCmd creates the xcp command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{fs: afero.NewOsFs(), system: systemClipboard{}})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xcp",
		Short: "xcp - cut, copy and paste files across directories",
		Long: `xcp is a clipboard for files and directories.

Cut or copy an item into the clipboard, change directory, and paste it
there. Every new clip retires the previous one into a small backup ring.

The clipboard lives in ~/.xcp by default; see 'xcp config' for settings.`,
		Version:       version.GetFullVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XCP_CONFIG_PATH or ~/.config/xcp/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "only print errors and paste results")

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupClipboard,
		Title: "Clipboard Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupInspect,
		Title: "Inspection Commands",
	})

	for _, cmd := range []*cobra.Command{
		newCopyCmd(a),
		newCutCmd(a),
		newPasteCmd(a),
		newCleanCmd(a),
	} {
		cmd.GroupID = groupClipboard
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{
		newPeekCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newWatchCmd(a),
	} {
		cmd.GroupID = groupInspect
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

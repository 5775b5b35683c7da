// Package cli provides the command-line interface for tonal.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/theme"
	"github.com/jmylchreest/tonal/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries state shared by all commands of one root command instance.
type app struct {
	registry   *theme.Registry
	logger     hclog.Logger
	configPath string
	verbose    bool
	quiet      bool
}

// NewRootCmd builds the complete command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		registry: theme.DefaultRegistry(),
		logger:   hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "OKLCH palette and theme generator",
		Long: `Tonal generates perceptually even colour palettes from an OKLCH seed,
resolves named theme presets into concrete role colours, and certifies
text contrast against WCAG AA/AAA.

The selected preset, mode and accessibility flags are remembered between
runs; palettes are always recomputed.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	a.registerGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newPaletteCmd(a))
	rootCmd.AddCommand(newContrastCmd(a))
	rootCmd.AddCommand(newThemeCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) registerGlobalFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	fs.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	fs.StringVar(&a.configPath, "config", "", "state file (default: $XDG_CONFIG_HOME/tonal/state.yaml)")
}

// setup loads an optional .env file and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	if a.verbose && a.quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)
	a.logger.Debug("starting", "command", cmd.CommandPath(), "version", version.Short())
	return nil
}

// newLogger creates the CLI logger. Verbose enables debug output, quiet
// limits it to errors, and the default shows warnings.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Output: out,
		Level:  level,
	})
}

// store returns the state store for the configured or default path.
func (a *app) store() (*config.Store, error) {
	path := a.configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	a.logger.Debug("using state file", "path", path)
	return config.NewStore(path, a.registry), nil
}

// loadState reads the persisted selection.
func (a *app) loadState() (theme.State, error) {
	store, err := a.store()
	if err != nil {
		return theme.State{}, err
	}
	s, err := store.Load()
	if err != nil {
		return theme.State{}, err
	}
	a.logger.Debug("loaded state", "state", s.String())
	return s, nil
}

// printf writes to the command's output unless --quiet is set.
func (a *app) printf(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// newVersionCmd represents the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

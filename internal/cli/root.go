package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/studioutils/studioutils/internal/branding"
	"github.com/studioutils/studioutils/internal/catalog"
	"github.com/studioutils/studioutils/internal/config"
	"github.com/studioutils/studioutils/internal/filter"
	"github.com/studioutils/studioutils/internal/launcher"
	"github.com/studioutils/studioutils/internal/logging"
	"github.com/studioutils/studioutils/internal/metrics"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// logger is built in PersistentPreRunE from the loaded configuration.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` is a central dashboard for the studio administration
utilities: browse them by category, open one in the studio, and inspect the
export surface the collection re-exports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		l, err := logging.New(cmd.ErrOrStderr(), config.Get(config.KeyLogLevel), config.Get(config.KeyLogFormat))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("catalog", "", "Load the tool catalog from a YAML file instead of the built-in one")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("studio-url", "", "Studio origin prepended to launch targets")
	_ = viper.BindPFlag(config.KeyCatalogFile, flags.Lookup("catalog"))
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyStudioURL, flags.Lookup("studio-url"))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// loadRegistry returns the configured catalog file, or the built-in catalog
// when none is set.
func loadRegistry() (*catalog.Registry, error) {
	path := config.Get(config.KeyCatalogFile)
	if path == "" {
		return catalog.Default(), nil
	}
	reg, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	logger.Debug("catalog loaded", zap.String("path", path), zap.Int("tools", reg.Len()))
	return reg, nil
}

// newLauncher builds a launcher over reg. When printOnly is set targets are
// written to w instead of being opened.
func newLauncher(reg *catalog.Registry, w io.Writer, printOnly bool, rec metrics.Recorder) *launcher.Launcher {
	mode := launcher.ModeBrowser
	if printOnly {
		mode = launcher.ModePrint
	}
	opener := launcher.DispatchOpener(mode, config.Get(config.KeyOpenCommand), w)
	return launcher.New(reg, opener,
		launcher.WithBasePath(config.Get(config.KeyBasePath)),
		launcher.WithStudioURL(config.Get(config.KeyStudioURL)),
		launcher.WithLogger(logger),
		launcher.WithMetrics(rec),
	)
}

// selectCategory applies a --category flag to f. An unknown id leaves the
// selection unchanged and prints a hint instead of failing.
func selectCategory(cmd *cobra.Command, f *filter.Controller, id string) {
	if id == "" || f.Select(id) {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Unknown category %q; run '%s categories' for the list.\n", id, branding.CLIName())
}

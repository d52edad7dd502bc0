package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studioutils/studioutils/internal/dashboard"
	"github.com/studioutils/studioutils/internal/filter"
	"github.com/studioutils/studioutils/internal/metrics"
)

var browsePrint bool

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively pick a category and a utility to open",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browsePrint, "print", false, "Print the target instead of opening it")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	toolID, err := dashboard.Browse(filter.New(reg), reg)
	switch {
	case errors.Is(err, dashboard.ErrAborted):
		return nil
	case errors.Is(err, dashboard.ErrNothingToOpen):
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return nil
	case err != nil:
		return err
	}

	l := newLauncher(reg, cmd.OutOrStdout(), browsePrint, metrics.Nop{})
	if err := l.Launch(toolID); err != nil {
		return fmt.Errorf("opening %s: %w", toolID, err)
	}
	l.Wait()
	return nil
}

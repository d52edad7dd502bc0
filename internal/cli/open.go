package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studioutils/studioutils/internal/metrics"
)

var openPrint bool

var openCmd = &cobra.Command{
	Use:   "open <tool-id>",
	Short: "Open a utility in the studio",
	Long: `Open a utility in the studio by navigating to its desk route.

Only tools whose status is available can be opened. Use --print to write the
target instead of starting the browser.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVar(&openPrint, "print", false, "Print the target instead of opening it")
	openCmd.Flags().BoolVar(&openPrint, "dry-run", false, "Alias of --print")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	l := newLauncher(reg, cmd.OutOrStdout(), openPrint, metrics.Nop{})
	if err := l.Launch(args[0]); err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	l.Wait()

	if !openPrint {
		target, _ := l.Resolve(args[0])
		fmt.Fprintf(cmd.ErrOrStderr(), "Opened %s\n", target)
	}
	return nil
}

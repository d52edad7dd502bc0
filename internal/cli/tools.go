package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/studioutils/studioutils/internal/catalog"
	"github.com/studioutils/studioutils/internal/dashboard"
	"github.com/studioutils/studioutils/internal/filter"
)

var (
	toolsCategory string
	toolsJSON     bool
)

var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"ls"},
	Short:   "List utilities, optionally filtered by category",
	Args:    cobra.NoArgs,
	RunE:    runTools,
}

func init() {
	toolsCmd.Flags().StringVarP(&toolsCategory, "category", "c", "", "Category to list (all, data, assets, content, optimization)")
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	f := filter.New(reg)
	selectCategory(cmd, f, toolsCategory)
	tools := f.Visible()

	if toolsJSON {
		if tools == nil {
			tools = []catalog.Tool{}
		}
		data, err := json.MarshalIndent(tools, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling tools: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if f.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), dashboard.EmptyMessage)
		return nil
	}
	return writeToolsTable(cmd.OutOrStdout(), tools)
}

func writeToolsTable(out io.Writer, tools []catalog.Tool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSTATUS")
	for _, t := range tools {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", t.ID, t.Icon, t.Name, t.Category, t.Status.Label())
	}
	return w.Flush()
}

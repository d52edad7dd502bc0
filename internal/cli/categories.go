package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/studioutils/studioutils/internal/catalog"
)

var categoriesJSON bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with their tool counts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(categoriesCmd)
}

// categoryRow is one line of the categories listing. The all row counts
// the whole catalog.
type categoryRow struct {
	ID    catalog.Category `json:"id"`
	Name  string           `json:"name"`
	Icon  string           `json:"icon"`
	Count int              `json:"count"`
}

func categoryRows(reg *catalog.Registry) []categoryRow {
	cats := reg.Categories()
	rows := make([]categoryRow, 0, len(cats))
	for _, c := range cats {
		n := reg.Len()
		if c.ID != catalog.All {
			n = reg.CountFor(c.ID)
		}
		rows = append(rows, categoryRow{ID: c.ID, Name: c.Name, Icon: c.Icon, Count: n})
	}
	return rows
}

func runCategories(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	rows := categoryRows(reg)

	if categoriesJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling categories: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	return writeCategoriesTable(cmd.OutOrStdout(), rows)
}

func writeCategoriesTable(out io.Writer, rows []categoryRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTOOLS")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s %s\t%d\n", r.ID, r.Icon, r.Name, r.Count)
	}
	return w.Flush()
}

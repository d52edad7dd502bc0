package cli

import (
	"github.com/spf13/cobra"

	"github.com/studioutils/studioutils/internal/config"
	"github.com/studioutils/studioutils/internal/dashboard"
)

var (
	dashboardCategory string
	dashboardJSON     bool
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render the utilities dashboard",
	Long: `Render the utilities dashboard: category overview, the tool grid for the
selected category, quick actions and help.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardCategory, "category", "c", "", "Category to show (all, data, assets, content, optimization)")
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	comp := dashboard.NewComponent(reg,
		dashboard.WithBasePath(config.Get(config.KeyBasePath)),
		dashboard.WithStudioURL(config.Get(config.KeyStudioURL)),
	)
	f := comp.Mount()
	selectCategory(cmd, f, dashboardCategory)

	view := comp.View(f)
	if dashboardJSON {
		return dashboard.RenderJSON(cmd.OutOrStdout(), view)
	}
	return dashboard.RenderText(cmd.OutOrStdout(), view)
}

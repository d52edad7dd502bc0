package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/studioutils/studioutils/internal/aggregate"
	"github.com/studioutils/studioutils/internal/dashboard"
)

var (
	exportsPackage string
	exportsJSON    bool
)

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "Show the composed export namespace",
	Long: `Compose the dashboard entry point with every sibling utility package and
list the re-exported symbols. Fails if two packages export the same name or a
sibling package version is outside the supported range.`,
	Args: cobra.NoArgs,
	RunE: runExports,
}

func init() {
	exportsCmd.Flags().StringVarP(&exportsPackage, "package", "p", "", "Only show symbols of one package")
	exportsCmd.Flags().BoolVar(&exportsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(exportsCmd)
}

type exportPackage struct {
	ID      string   `json:"id"`
	Version string   `json:"version"`
	Symbols []string `json:"symbols"`
}

func exportPackages(ns *aggregate.Namespace, only string) ([]exportPackage, error) {
	var out []exportPackage
	for _, id := range ns.Packages() {
		if only != "" && id != only {
			continue
		}
		out = append(out, exportPackage{ID: id, Version: ns.Version(id), Symbols: ns.SymbolsIn(id)})
	}
	if only != "" && len(out) == 0 {
		return nil, fmt.Errorf("package %q is not part of the namespace", only)
	}
	return out, nil
}

func runExports(cmd *cobra.Command, args []string) error {
	ns, err := dashboard.Namespace(buildVersion)
	if err != nil {
		return fmt.Errorf("composing exports: %w", err)
	}
	pkgs, err := exportPackages(ns, exportsPackage)
	if err != nil {
		return err
	}

	if exportsJSON {
		data, err := json.MarshalIndent(pkgs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling exports: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	return writeExportsTable(cmd.OutOrStdout(), pkgs)
}

func writeExportsTable(out io.Writer, pkgs []exportPackage) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PACKAGE\tVERSION\tSYMBOLS")
	for _, p := range pkgs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Version, strings.Join(p.Symbols, ", "))
	}
	return w.Flush()
}

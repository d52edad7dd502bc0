package utilities

import (
	"testing"

	"github.com/studioutils/studioutils/internal/aggregate"
	"github.com/studioutils/studioutils/internal/catalog"
)

func TestAllPackages_Count(t *testing.T) {
	if got := len(AllPackages()); got != 8 {
		t.Fatalf("AllPackages() returned %d packages, want 8", got)
	}
}

func TestParsePackageName(t *testing.T) {
	name, ok := ParsePackageName("sanity-export-data")
	if !ok || name != ExportData {
		t.Fatalf("ParsePackageName(sanity-export-data) = %q, %v", name, ok)
	}
	for _, input := range []string{"", "export-data", "sanity-enhanced-commerce"} {
		if _, ok := ParsePackageName(input); ok {
			t.Errorf("ParsePackageName(%q) returned true", input)
		}
	}
}

func TestPackages_ToolIDsExistInCatalog(t *testing.T) {
	reg := catalog.Default()
	for _, name := range AllPackages() {
		cfg, _ := Config(name)
		tool, ok := reg.Lookup(cfg.ToolID)
		if !ok {
			t.Errorf("%s: tool %q not in catalog", name, cfg.ToolID)
			continue
		}
		if tool.Package != string(name) {
			t.Errorf("%s: catalog tool package = %q", name, tool.Package)
		}
	}
}

func TestPackages_ComposeWithoutCollisions(t *testing.T) {
	ns, err := aggregate.Compose(aggregate.Package{ID: "entry"}, Packages())
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if got := len(ns.Symbols()); got != 24 {
		t.Errorf("Symbols() len = %d, want 24", got)
	}

	v, ok := ns.LookupIn(string(ExportData), "ExportDataTool")
	if !ok {
		t.Fatal("ExportDataTool not exported")
	}
	factory, ok := v.(func() Definition)
	if !ok {
		t.Fatalf("ExportDataTool is %T", v)
	}
	if def := factory(); def.ToolID != "export-data" {
		t.Errorf("factory() = %+v", def)
	}
}

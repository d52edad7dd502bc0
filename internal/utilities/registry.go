package utilities

import (
	"github.com/studioutils/studioutils/internal/aggregate"
)

// PackageName identifies a sibling utility package.
type PackageName string

const (
	SearchAndDelete    PackageName = "sanity-search-and-delete"
	DeleteUnusedAssets PackageName = "sanity-delete-unused-assets"
	BulkDataOperations PackageName = "sanity-bulk-data-operations"
	FontDataExtractor  PackageName = "sanity-font-data-extractor"
	ExportData         PackageName = "sanity-export-data"
	ConvertReferences  PackageName = "sanity-convert-references"
	ConvertIDsToSlugs  PackageName = "sanity-convert-ids-to-slugs"
	DuplicateAndRename PackageName = "sanity-duplicate-and-rename"
)

// Definition is what a sibling's tool factory returns to the host studio.
type Definition struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	ToolID string `json:"tool_id"`
}

// PackageConfig describes one sibling package's export surface.
type PackageConfig struct {
	Version string
	ToolID  string
	Title   string
	Prefix  string // exported symbol prefix, e.g. "SearchAndDelete"
}

// AllPackages returns the sibling packages in aggregation order.
func AllPackages() []PackageName {
	return []PackageName{
		SearchAndDelete,
		DeleteUnusedAssets,
		BulkDataOperations,
		FontDataExtractor,
		ExportData,
		ConvertReferences,
		ConvertIDsToSlugs,
		DuplicateAndRename,
	}
}

var packageRegistry = map[PackageName]PackageConfig{
	SearchAndDelete:    {Version: "1.4.0", ToolID: "search-and-delete", Title: "Search & Delete", Prefix: "SearchAndDelete"},
	DeleteUnusedAssets: {Version: "1.2.1", ToolID: "delete-unused-assets", Title: "Delete Unused Assets", Prefix: "DeleteUnusedAssets"},
	BulkDataOperations: {Version: "1.1.0", ToolID: "bulk-data-operations", Title: "Bulk Data Operations", Prefix: "BulkDataOperations"},
	FontDataExtractor:  {Version: "1.0.2", ToolID: "font-data-extractor", Title: "Font Data Extractor", Prefix: "FontDataExtractor"},
	ExportData:         {Version: "1.3.0", ToolID: "export-data", Title: "Export Data", Prefix: "ExportData"},
	ConvertReferences:  {Version: "1.0.0", ToolID: "convert-references", Title: "Convert References", Prefix: "ConvertReferences"},
	ConvertIDsToSlugs:  {Version: "1.0.1", ToolID: "convert-ids-to-slugs", Title: "Convert IDs to Slugs", Prefix: "ConvertIdsToSlugs"},
	DuplicateAndRename: {Version: "1.1.2", ToolID: "duplicate-and-rename", Title: "Duplicate & Rename", Prefix: "DuplicateAndRename"},
}

// ParsePackageName converts a string to a PackageName, returning false if
// it is not one of the sibling packages.
func ParsePackageName(s string) (PackageName, bool) {
	if _, ok := packageRegistry[PackageName(s)]; ok {
		return PackageName(s), true
	}
	return "", false
}

// Config returns the configuration of a sibling package.
func Config(name PackageName) (PackageConfig, bool) {
	cfg, ok := packageRegistry[name]
	return cfg, ok
}

// Packages returns the export surfaces of all sibling packages in
// aggregation order.
func Packages() []aggregate.Package {
	names := AllPackages()
	pkgs := make([]aggregate.Package, 0, len(names))
	for _, name := range names {
		pkgs = append(pkgs, exportSurface(name, packageRegistry[name]))
	}
	return pkgs
}

// exportSurface builds the conventional exports of one package: a tool
// factory, a component descriptor and the bare tool id.
func exportSurface(name PackageName, cfg PackageConfig) aggregate.Package {
	def := Definition{Name: cfg.ToolID, Title: cfg.Title, ToolID: cfg.ToolID}
	factory := func() Definition { return def }
	return aggregate.Package{
		ID:      string(name),
		Version: cfg.Version,
		Exports: map[string]any{
			cfg.Prefix + "Tool":      factory,
			cfg.Prefix + "Component": def,
			cfg.Prefix + "ToolID":    cfg.ToolID,
		},
	}
}

package catalog

import "fmt"

// defaultTools is the built-in catalog in display order.
var defaultTools = []Tool{
	{
		ID:          "search-and-delete",
		Name:        "Search & Delete",
		Description: "Find and remove documents with advanced search capabilities",
		Icon:        "🔍",
		Category:    Content,
		Status:      Available,
		Package:     "sanity-search-and-delete",
	},
	{
		ID:          "bulk-data-operations",
		Name:        "Bulk Data Operations",
		Description: "Perform batch operations on multiple documents at once",
		Icon:        "📊",
		Category:    Data,
		Status:      Available,
		Package:     "sanity-bulk-data-operations",
	},
	{
		ID:          "delete-unused-assets",
		Name:        "Delete Unused Assets",
		Description: "Clean up unreferenced assets to free up storage space",
		Icon:        "🗑️",
		Category:    Assets,
		Status:      Available,
		Package:     "sanity-delete-unused-assets",
	},
	{
		ID:          "export-data",
		Name:        "Export Data",
		Description: "Export your Sanity data in various formats",
		Icon:        "📤",
		Category:    Data,
		Status:      Available,
		Package:     "sanity-export-data",
	},
	{
		ID:          "convert-references",
		Name:        "Convert References",
		Description: "Convert strong references to weak references",
		Icon:        "🔗",
		Category:    Optimization,
		Status:      Available,
		Package:     "sanity-convert-references",
	},
	{
		ID:          "convert-ids-to-slugs",
		Name:        "Convert IDs to Slugs",
		Description: "Transform document IDs into SEO-friendly slugs",
		Icon:        "🌐",
		Category:    Optimization,
		Status:      Available,
		Package:     "sanity-convert-ids-to-slugs",
	},
	{
		ID:          "duplicate-and-rename",
		Name:        "Duplicate & Rename",
		Description: "Duplicate documents and rename them efficiently",
		Icon:        "📋",
		Category:    Content,
		Status:      Available,
		Package:     "sanity-duplicate-and-rename",
	},
	{
		ID:          "font-data-extractor",
		Name:        "Font Data Extractor",
		Description: "Extract metadata and information from font files",
		Icon:        "📁",
		Category:    Assets,
		Status:      Available,
		Package:     "sanity-font-data-extractor",
	},
	{
		ID:          "advanced-reference-array",
		Name:        "Advanced Reference Array",
		Description: "Enhanced reference array input with advanced features",
		Icon:        "🔗",
		Category:    Content,
		Status:      Available,
	},
	{
		ID:          "font-management-suite",
		Name:        "Font Management Suite",
		Description: "Upload and manage font files with metadata extraction",
		Icon:        "🎨",
		Category:    Assets,
		Status:      Available,
	},
	{
		ID:          "enhanced-commerce",
		Name:        "Enhanced Commerce",
		Description: "Advanced e-commerce schemas with renewal support",
		Icon:        "🛒",
		Category:    Content,
		Status:      Available,
	},
	{
		ID:          "renewals-authorization",
		Name:        "Renewals Authorization",
		Description: "Manage renewal orders and cart processing",
		Icon:        "🔄",
		Category:    Content,
		Status:      Available,
	},
}

// Default returns the built-in catalog. Each call builds a fresh registry.
func Default() *Registry {
	r, err := New(defaultTools)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return r
}

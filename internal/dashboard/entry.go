package dashboard

import (
	"github.com/studioutils/studioutils/internal/aggregate"
	"github.com/studioutils/studioutils/internal/branding"
	"github.com/studioutils/studioutils/internal/catalog"
	"github.com/studioutils/studioutils/internal/utilities"
)

// EntryPackageID is the id the entry point is composed under.
const EntryPackageID = "studio-utilities"

// StudioUtilities returns the descriptor the host studio mounts, backed by
// the built-in catalog.
func StudioUtilities() aggregate.Entry {
	return NewEntry(catalog.Default())
}

// Utilities is an alias of StudioUtilities.
var Utilities = StudioUtilities

// NewEntry returns the studio descriptor for a component over reg.
func NewEntry(reg *catalog.Registry, opts ...Option) aggregate.Entry {
	return aggregate.Entry{
		Name:      "utilities",
		Title:     branding.DisplayName(),
		Icon:      branding.Icon,
		Component: NewComponent(reg, opts...),
	}
}

// EntryPackage returns the export surface of the dashboard itself.
func EntryPackage(version string) aggregate.Package {
	return aggregate.Package{
		ID:      EntryPackageID,
		Version: version,
		Exports: map[string]any{
			"StudioUtilities":          StudioUtilities,
			"Utilities":                Utilities,
			"StudioUtilitiesComponent": NewComponent,
		},
	}
}

// Namespace composes the dashboard entry point with every sibling package.
func Namespace(version string, opts ...aggregate.Option) (*aggregate.Namespace, error) {
	return aggregate.Compose(EntryPackage(version), utilities.Packages(), opts...)
}

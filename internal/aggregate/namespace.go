package aggregate

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Package is one module-level export surface.
type Package struct {
	ID      string
	Version string
	Exports map[string]any
}

// Entry is the descriptor the host studio mounts: a named tool with a title,
// an icon token and a renderable component.
type Entry struct {
	Name      string
	Title     string
	Icon      func() string
	Component any
}

// Export is a symbol resolved through the flat index.
type Export struct {
	Symbol  string
	Package string
	Value   any
}

// Namespace is the composed, read-only export surface.
type Namespace struct {
	packages []string
	versions map[string]string
	tables   map[string]map[string]any
	flat     map[string]Export
}

type options struct {
	constraint string
}

// Option configures Compose.
type Option func(*options)

// WithConstraint sets the semver constraint sibling packages must satisfy.
func WithConstraint(c string) Option {
	return func(o *options) {
		o.constraint = c
	}
}

// Compose merges entry and the sibling packages, in that order, into one
// namespace. The entry package is exempt from the version check; every
// package takes part in the collision check.
func Compose(entry Package, siblings []Package, opts ...Option) (*Namespace, error) {
	o := options{constraint: DefaultConstraint}
	for _, opt := range opts {
		opt(&o)
	}
	constraint, err := semver.NewConstraint(o.constraint)
	if err != nil {
		return nil, fmt.Errorf("parsing version constraint %q: %w", o.constraint, err)
	}

	ns := &Namespace{
		versions: make(map[string]string, len(siblings)+1),
		tables:   make(map[string]map[string]any, len(siblings)+1),
		flat:     make(map[string]Export),
	}
	if err := ns.add(entry); err != nil {
		return nil, err
	}
	for _, p := range siblings {
		ok, err := checkVersion(constraint, p.Version)
		if err != nil {
			return nil, &IncompatiblePackageError{ID: p.ID, Version: p.Version, Constraint: o.constraint, Err: err}
		}
		if !ok {
			return nil, &IncompatiblePackageError{ID: p.ID, Version: p.Version, Constraint: o.constraint}
		}
		if err := ns.add(p); err != nil {
			return nil, err
		}
	}
	return ns, nil
}

func (ns *Namespace) add(p Package) error {
	if _, dup := ns.tables[p.ID]; dup {
		return &DuplicatePackageError{ID: p.ID}
	}
	// Check the whole table first so a failed package leaves nothing behind.
	for _, sym := range sortedKeys(p.Exports) {
		if prev, ok := ns.flat[sym]; ok {
			return &DuplicateExportError{Symbol: sym, First: prev.Package, Second: p.ID}
		}
	}

	table := make(map[string]any, len(p.Exports))
	for sym, v := range p.Exports {
		table[sym] = v
		ns.flat[sym] = Export{Symbol: sym, Package: p.ID, Value: v}
	}
	ns.tables[p.ID] = table
	ns.versions[p.ID] = p.Version
	ns.packages = append(ns.packages, p.ID)
	return nil
}

// Lookup resolves a symbol through the flat index.
func (ns *Namespace) Lookup(symbol string) (Export, bool) {
	e, ok := ns.flat[symbol]
	return e, ok
}

// LookupIn resolves a symbol within one package.
func (ns *Namespace) LookupIn(pkgID, symbol string) (any, bool) {
	table, ok := ns.tables[pkgID]
	if !ok {
		return nil, false
	}
	v, ok := table[symbol]
	return v, ok
}

// Symbols returns every exported symbol, sorted.
func (ns *Namespace) Symbols() []string {
	return sortedKeys(ns.flat)
}

// SymbolsIn returns the symbols exported by one package, sorted.
func (ns *Namespace) SymbolsIn(pkgID string) []string {
	return sortedKeys(ns.tables[pkgID])
}

// Packages returns the composed package ids in composition order.
func (ns *Namespace) Packages() []string {
	return append([]string(nil), ns.packages...)
}

// Version returns the version a package was composed with.
func (ns *Namespace) Version(pkgID string) string {
	return ns.versions[pkgID]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

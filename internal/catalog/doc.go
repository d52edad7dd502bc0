// Package catalog holds the utility catalog: the tool and category
// descriptors, the immutable Registry built from them, and the per-category
// statistics derived from it. The built-in catalog is produced by Default;
// LoadFile builds an alternative registry from a schema-validated YAML file.
package catalog

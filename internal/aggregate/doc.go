// Package aggregate composes the export surfaces of the sibling utility
// packages and the dashboard entry point into one namespace. Every symbol is
// addressable both by package (LookupIn) and through a flat index (Lookup);
// Compose fails when two packages export the same name instead of letting
// one shadow the other, and when a sibling's version does not satisfy the
// namespace's semver constraint.
package aggregate

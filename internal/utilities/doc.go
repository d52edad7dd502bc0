// Package utilities describes the export surfaces of the eight sibling
// utility packages that the dashboard aggregates. Each package exposes a
// studio tool factory and a component descriptor under conventional names;
// their implementations live in the sibling packages themselves.
package utilities

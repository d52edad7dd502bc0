package catalog

import (
	"fmt"
	"strings"
)

// DuplicateToolError is returned by New when two tools share an id.
type DuplicateToolError struct {
	ID     string
	First  int // index of the first declaration
	Second int // index of the conflicting declaration
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("duplicate tool id %q at positions %d and %d", e.ID, e.First, e.Second)
}

// InvalidCategoryError is returned when a tool names a category outside the
// fixed enumeration (including the synthetic all).
type InvalidCategoryError struct {
	ToolID   string
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("tool %q has invalid category %q", e.ToolID, e.Category)
}

// InvalidStatusError is returned when a tool has an unknown status.
type InvalidStatusError struct {
	ToolID string
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("tool %q has invalid status %q", e.ToolID, e.Status)
}

// ValidationIssue represents a single schema validation error in a catalog file.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/tools/3/category")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// SchemaError is returned by Parse and LoadFile when the document does not
// satisfy the catalog schema.
type SchemaError struct {
	Source string
	Issues []ValidationIssue
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "catalog %s failed schema validation", e.Source)
	for _, issue := range e.Issues {
		path := issue.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(&b, "\n  %s: %s", path, issue.Message)
	}
	return b.String()
}

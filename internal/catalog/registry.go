package catalog

// Registry is the immutable, ordered tool catalog. It is safe to share
// between goroutines and dashboard instances because nothing mutates it
// after New returns.
type Registry struct {
	tools []Tool
	index map[string]int
}

// New validates tools and returns a registry holding a private copy of them
// in declaration order. It fails on a duplicate id or on a category or
// status outside the fixed enumerations.
func New(tools []Tool) (*Registry, error) {
	r := &Registry{
		tools: make([]Tool, 0, len(tools)),
		index: make(map[string]int, len(tools)),
	}
	for i, t := range tools {
		if !t.Category.Concrete() {
			return nil, &InvalidCategoryError{ToolID: t.ID, Category: string(t.Category)}
		}
		if _, ok := ParseStatus(string(t.Status)); !ok {
			return nil, &InvalidStatusError{ToolID: t.ID, Status: string(t.Status)}
		}
		if first, dup := r.index[t.ID]; dup {
			return nil, &DuplicateToolError{ID: t.ID, First: first, Second: i}
		}
		r.index[t.ID] = i
		r.tools = append(r.tools, t)
	}
	return r, nil
}

// List returns the full catalog in declaration order. The slice is a copy.
func (r *Registry) List() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Len returns the number of tools in the catalog.
func (r *Registry) Len() int { return len(r.tools) }

// Lookup returns the tool with the given id.
func (r *Registry) Lookup(id string) (Tool, bool) {
	i, ok := r.index[id]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// Categories returns the fixed category list, all first.
func (r *Registry) Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// CountFor returns the number of tools in a concrete category. It is zero
// for all and for unknown ids; counts are only meaningful per category.
func (r *Registry) CountFor(id Category) int {
	if !id.Concrete() {
		return 0
	}
	n := 0
	for _, t := range r.tools {
		if t.Category == id {
			n++
		}
	}
	return n
}

// InCategory returns the tools belonging to id in catalog order, or the
// whole catalog when id is All. Filtering and CountFor share this
// definition so the two can never disagree.
func (r *Registry) InCategory(id Category) []Tool {
	if id == All {
		return r.List()
	}
	var out []Tool
	for _, t := range r.tools {
		if t.Category == id {
			out = append(out, t)
		}
	}
	return out
}

// Stats returns one entry per concrete category, in display order, with the
// number of tools in it.
func (r *Registry) Stats() []CategoryStat {
	stats := make([]CategoryStat, 0, len(categories)-1)
	for _, c := range categories[1:] {
		stats = append(stats, CategoryStat{CategoryInfo: c, Count: r.CountFor(c.ID)})
	}
	return stats
}

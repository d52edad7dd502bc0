package dashboard

import (
	"strings"

	"github.com/studioutils/studioutils/internal/catalog"
	"github.com/studioutils/studioutils/internal/filter"
	"github.com/studioutils/studioutils/internal/launcher"
)

// EmptyMessage is shown when the selected category has no tools.
const EmptyMessage = "No utilities found in this category."

// quickActions are the shortcuts rendered below the tool grid.
var quickActions = []QuickAction{
	{ToolID: "search-and-delete", Label: "🔍 Search & Delete"},
	{ToolID: "bulk-data-operations", Label: "📊 Bulk Operations"},
	{ToolID: "delete-unused-assets", Label: "🗑️ Clean Assets"},
	{ToolID: "export-data", Label: "📤 Export Data"},
	{ToolID: "renewals-authorization", Label: "🔄 Renewals"},
	{ToolID: "enhanced-commerce", Label: "🛒 Commerce"},
}

// QuickAction is a shortcut to launch one tool.
type QuickAction struct {
	ToolID string `json:"tool_id"`
	Label  string `json:"label"`
	Target string `json:"target,omitempty"`
}

// ToolView is a tool as the grid shows it. Launchable is false for tools
// whose status is not available; their open control is disabled.
type ToolView struct {
	catalog.Tool
	StatusLabel string       `json:"status_label"`
	Tone        catalog.Tone `json:"tone"`
	Launchable  bool         `json:"launchable"`
	Target      string       `json:"target"`
}

// View is everything the renderer needs for one frame.
type View struct {
	Title        string                 `json:"title"`
	Selected     catalog.Category       `json:"selected"`
	Heading      string                 `json:"heading"`
	Categories   []catalog.CategoryInfo `json:"categories"`
	Stats        []catalog.CategoryStat `json:"stats"`
	Tools        []ToolView             `json:"tools"`
	Empty        bool                   `json:"empty"`
	EmptyMessage string                 `json:"empty_message,omitempty"`
	QuickActions []QuickAction          `json:"quick_actions"`
}

// Component renders the dashboard over one registry. It holds no selection
// state; every mounted instance owns its own filter.Controller.
type Component struct {
	reg       *catalog.Registry
	basePath  string
	studioURL string
	filterOp  []filter.Option
}

// Option configures a Component.
type Option func(*Component)

// WithBasePath sets the route prefix shown for tool targets.
func WithBasePath(p string) Option {
	return func(c *Component) {
		if p != "" {
			c.basePath = p
		}
	}
}

// WithStudioURL makes tool targets absolute, matching what the launcher
// navigates to.
func WithStudioURL(u string) Option {
	return func(c *Component) {
		c.studioURL = strings.TrimRight(u, "/")
	}
}

// WithFilterOptions passes options to every filter controller Mount creates.
func WithFilterOptions(opts ...filter.Option) Option {
	return func(c *Component) {
		c.filterOp = append(c.filterOp, opts...)
	}
}

// NewComponent returns a component over reg.
func NewComponent(reg *catalog.Registry, opts ...Option) *Component {
	c := &Component{reg: reg, basePath: launcher.DefaultBasePath}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the catalog the component renders.
func (c *Component) Registry() *catalog.Registry { return c.reg }

// Mount creates the selection state for a new dashboard instance.
func (c *Component) Mount() *filter.Controller {
	return filter.New(c.reg, c.filterOp...)
}

// View derives the frame for the given selection state.
func (c *Component) View(f *filter.Controller) View {
	visible := f.Visible()
	tools := make([]ToolView, 0, len(visible))
	for _, t := range visible {
		tools = append(tools, ToolView{
			Tool:        t,
			StatusLabel: t.Status.Label(),
			Tone:        t.Status.Tone(),
			Launchable:  t.Status.Launchable(),
			Target:      c.target(t.ID),
		})
	}

	v := View{
		Title:        "Studio Utilities Dashboard",
		Selected:     f.Selected(),
		Heading:      f.Heading(),
		Categories:   c.reg.Categories(),
		Stats:        c.reg.Stats(),
		Tools:        tools,
		Empty:        len(tools) == 0,
		QuickActions: c.quickActions(),
	}
	if v.Empty {
		v.EmptyMessage = EmptyMessage
	}
	return v
}

// quickActions returns the shortcuts whose tools exist in the registry.
func (c *Component) quickActions() []QuickAction {
	out := make([]QuickAction, 0, len(quickActions))
	for _, qa := range quickActions {
		if _, ok := c.reg.Lookup(qa.ToolID); !ok {
			continue
		}
		qa.Target = c.target(qa.ToolID)
		out = append(out, qa)
	}
	return out
}

func (c *Component) target(toolID string) string {
	return c.studioURL + launcher.Target(c.basePath, toolID)
}

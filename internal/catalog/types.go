package catalog

import "strings"

// Category classifies a tool into one filter bucket.
type Category string

// Category constants. All is the synthetic "no filter" category and is never
// a valid Tool.Category.
const (
	All          Category = "all"
	Data         Category = "data"
	Assets       Category = "assets"
	Content      Category = "content"
	Optimization Category = "optimization"
)

// Concrete reports whether c is one of the categories a tool can belong to.
func (c Category) Concrete() bool {
	switch c {
	case Data, Assets, Content, Optimization:
		return true
	default:
		return false
	}
}

// ParseCategory converts a string to a Category, returning false if it is
// not one of the known category ids (including all).
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if c == All || c.Concrete() {
		return c, true
	}
	return "", false
}

// Status governs whether a tool can be launched.
type Status string

const (
	Available  Status = "available"
	ComingSoon Status = "coming-soon"
	Deprecated Status = "deprecated"
)

// ParseStatus converts a string to a Status, returning false if invalid.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case Available, ComingSoon, Deprecated:
		return Status(s), true
	default:
		return "", false
	}
}

// Launchable reports whether a tool with this status may be launched.
func (s Status) Launchable() bool { return s == Available }

// Label returns the badge text, e.g. "coming soon".
func (s Status) Label() string {
	return strings.Replace(string(s), "-", " ", 1)
}

// Tone is the badge tone for a status.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneCaution  Tone = "caution"
	ToneCritical Tone = "critical"
	ToneDefault  Tone = "default"
)

// Tone maps a status to its badge tone.
func (s Status) Tone() Tone {
	switch s {
	case Available:
		return TonePositive
	case ComingSoon:
		return ToneCaution
	case Deprecated:
		return ToneCritical
	default:
		return ToneDefault
	}
}

// Tool describes one utility.
type Tool struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Icon        string   `yaml:"icon" json:"icon"`
	Category    Category `yaml:"category" json:"category"`
	Status      Status   `yaml:"status" json:"status"`
	Package     string   `yaml:"package,omitempty" json:"package,omitempty"` // sibling package that implements the tool
}

// CategoryInfo describes one filter bucket.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
	Icon string   `json:"icon"`
}

// CategoryStat is a concrete category with its tool count.
type CategoryStat struct {
	CategoryInfo
	Count int `json:"count"`
}

// categories is the fixed category list in display order, all first.
var categories = []CategoryInfo{
	{ID: All, Name: "All Utilities", Icon: "🛠️"},
	{ID: Data, Name: "Data Operations", Icon: "📊"},
	{ID: Assets, Name: "Asset Management", Icon: "🗂️"},
	{ID: Content, Name: "Content Tools", Icon: "📝"},
	{ID: Optimization, Name: "Optimization", Icon: "⚡"},
}

// CategoryByID returns the descriptor for a category id.
func CategoryByID(id Category) (CategoryInfo, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

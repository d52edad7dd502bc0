package dashboard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/studioutils/studioutils/internal/catalog"
	"github.com/studioutils/studioutils/internal/filter"
)

// ErrNothingToOpen is returned by Browse when the chosen category has no
// tool that can be launched.
var ErrNothingToOpen = errors.New("no available utilities in this category")

// ErrAborted is returned by Browse when the user cancels a prompt.
var ErrAborted = errors.New("browse aborted")

// categoryOptions lists every category with its tool count.
func categoryOptions(reg *catalog.Registry) []huh.Option[string] {
	cats := reg.Categories()
	opts := make([]huh.Option[string], 0, len(cats))
	for _, c := range cats {
		n := reg.Len()
		if c.ID != catalog.All {
			n = reg.CountFor(c.ID)
		}
		label := fmt.Sprintf("%s %s (%s)", c.Icon, c.Name, toolCount(n))
		opts = append(opts, huh.NewOption(label, string(c.ID)))
	}
	return opts
}

// toolOptions lists the launchable tools of the current selection. Tools
// that are not available are returned separately so they can be shown but
// never chosen.
func toolOptions(f *filter.Controller) (opts []huh.Option[string], disabled []catalog.Tool) {
	for _, t := range f.Visible() {
		if !t.Status.Launchable() {
			disabled = append(disabled, t)
			continue
		}
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s", t.Icon, t.Name), t.ID))
	}
	return opts, disabled
}

func disabledNote(tools []catalog.Tool) string {
	if len(tools) == 0 {
		return ""
	}
	s := "Not yet available:"
	for _, t := range tools {
		s += fmt.Sprintf("\n  %s %s [%s]", t.Icon, t.Name, t.Status.Label())
	}
	return s
}

// Browse walks the user through choosing a category and then a tool, and
// returns the chosen tool id. The selection is applied to f.
func Browse(f *filter.Controller, reg *catalog.Registry) (string, error) {
	category := string(f.Selected())
	err := huh.NewSelect[string]().
		Title("Filter by Category").
		Options(categoryOptions(reg)...).
		Value(&category).
		Run()
	if err != nil {
		return "", browseErr(err)
	}
	f.Select(category)

	opts, disabled := toolOptions(f)
	if len(opts) == 0 {
		if len(f.Visible()) == 0 {
			return "", fmt.Errorf("%s: %w", EmptyMessage, ErrNothingToOpen)
		}
		return "", ErrNothingToOpen
	}

	var toolID string
	err = huh.NewSelect[string]().
		Title(f.Heading()).
		Description(disabledNote(disabled)).
		Options(opts...).
		Value(&toolID).
		Run()
	if err != nil {
		return "", browseErr(err)
	}
	return toolID, nil
}

func browseErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return fmt.Errorf("running prompt: %w", err)
}

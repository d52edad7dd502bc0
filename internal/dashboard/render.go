package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const helpText = `The Studio Utilities collection provides tools for managing your studio content.
Each utility handles a specific administrative task.`

var printer = message.NewPrinter(language.English)

func init() {
	_ = message.Set(language.English, "%d tools",
		plural.Selectf(1, "",
			plural.One, "%d tool",
			plural.Other, "%d tools",
		))
}

// toolCount formats a tool count, e.g. "1 tool", "12 tools".
func toolCount(n int) string {
	return printer.Sprintf("%d tools", n)
}

// RenderText writes the dashboard frame as plain text.
func RenderText(w io.Writer, v View) error {
	fmt.Fprintf(w, "%s\n\n", v.Title)

	fmt.Fprintln(w, "Utility Categories")
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, s := range v.Stats {
		fmt.Fprintf(tw, "  %s %s\t%s\n", s.Icon, s.Name, toolCount(s.Count))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nFilter by Category")
	for _, c := range v.Categories {
		label := fmt.Sprintf("%s %s (%s)", c.Icon, c.Name, c.ID)
		if c.ID == v.Selected {
			label = "[" + label + "]"
		}
		fmt.Fprintf(w, "  %s\n", label)
	}

	fmt.Fprintf(w, "\n%s (%s)\n", v.Heading, toolCount(len(v.Tools)))
	if v.Empty {
		fmt.Fprintf(w, "  %s\n", v.EmptyMessage)
	} else {
		tw = tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "  \tID\tNAME\tSTATUS\tOPEN\tDESCRIPTION")
		for _, t := range v.Tools {
			open := t.Target
			if !t.Launchable {
				open = "(disabled)"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n", t.Icon, t.ID, t.Name, t.StatusLabel, open, t.Description)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(v.QuickActions) > 0 {
		fmt.Fprintln(w, "\nQuick Actions")
		for _, qa := range v.QuickActions {
			fmt.Fprintf(w, "  %s -> %s\n", qa.Label, qa.ToolID)
		}
	}

	fmt.Fprintf(w, "\nHelp & Documentation\n%s\n", helpText)
	return nil
}

// RenderJSON writes the frame as indented JSON.
func RenderJSON(w io.Writer, v View) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dashboard view: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

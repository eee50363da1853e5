// Package display renders category matches for the terminal.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cartwise/backend/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Styles for terminal output.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	exactTag    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// CategoryJSON is the JSON output shape for a taxonomy entry.
type CategoryJSON struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ParentName string   `json:"parentName,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// PrintMatches renders ranked matches for a query.
func PrintMatches(w io.Writer, query string, matches []domain.CategoryMatch) {
	fmt.Fprintf(w, "\n%s %q: %s\n\n",
		headerStyle.Render("Categories for"),
		query,
		cyanStyle.Render(fmt.Sprintf("%d matches", len(matches))),
	)

	for i, m := range matches {
		fmt.Fprintf(w, "  %2d. ", i+1)
		printMatchLine(w, m)
	}
	fmt.Fprintln(w)
}

// PrintMatch renders the single best match for a query.
func PrintMatch(w io.Writer, query string, match domain.CategoryMatch) {
	fmt.Fprintf(w, "\n%s %q\n\n  ", headerStyle.Render("Best category for"), query)
	printMatchLine(w, match)
	fmt.Fprintln(w)
}

func printMatchLine(w io.Writer, m domain.CategoryMatch) {
	line := titleStyle.Render(m.Category.Name)
	if m.IsExactMatch {
		line += " " + exactTag.Render("[exact]")
	}
	fmt.Fprintf(w, "%s %s  %s", line, scoreStyle.Render(fmt.Sprintf("%.2f", m.Score)), dimStyle.Render(m.Category.ID))
	if m.Category.ParentName != "" {
		fmt.Fprintf(w, "  %s", dimStyle.Render("in "+m.Category.ParentName))
	}
	fmt.Fprintln(w)
}

// PrintMatchesJSON renders matches as a JSON array.
func PrintMatchesJSON(w io.Writer, matches []domain.CategoryMatch) error {
	out := make([]domain.MatchSummary, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Summary())
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintMatchJSON renders one match as a JSON object.
func PrintMatchJSON(w io.Writer, match domain.CategoryMatch) error {
	return json.NewEncoder(w).Encode(match.Summary())
}

// PrintCategory renders one taxonomy entry with its keywords.
func PrintCategory(w io.Writer, entry domain.CategoryEntry) {
	fmt.Fprintf(w, "\n%s  %s\n", titleStyle.Render(entry.Name), dimStyle.Render(entry.ID))
	if entry.ParentName != "" {
		fmt.Fprintf(w, "  Parent:   %s\n", entry.ParentName)
	}
	if len(entry.Keywords) > 0 {
		fmt.Fprintf(w, "  Keywords: %s\n", cyanStyle.Render(strings.Join(entry.Keywords, ", ")))
	}
	fmt.Fprintln(w)
}

// PrintCategories renders a titled list of taxonomy entries.
func PrintCategories(w io.Writer, title string, entries []domain.CategoryEntry) {
	fmt.Fprintf(w, "\n%s: %s\n\n",
		headerStyle.Render(title),
		cyanStyle.Render(fmt.Sprintf("%d categories", len(entries))),
	)
	for _, e := range entries {
		fmt.Fprintf(w, "  %-24s %s", dimStyle.Render(e.ID), e.Name)
		if e.ParentName != "" {
			fmt.Fprintf(w, "  %s", dimStyle.Render("in "+e.ParentName))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// PrintCategoryJSON renders one taxonomy entry, keywords included, as JSON.
func PrintCategoryJSON(w io.Writer, entry domain.CategoryEntry) error {
	return json.NewEncoder(w).Encode(toCategoryJSON(entry))
}

// PrintCategoriesJSON renders taxonomy entries as a JSON array.
func PrintCategoriesJSON(w io.Writer, entries []domain.CategoryEntry) error {
	out := make([]CategoryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, toCategoryJSON(e))
	}
	return json.NewEncoder(w).Encode(out)
}

func toCategoryJSON(e domain.CategoryEntry) CategoryJSON {
	return CategoryJSON{
		ID:         e.ID,
		Name:       e.Name,
		ParentName: e.ParentName,
		Keywords:   e.Keywords,
	}
}

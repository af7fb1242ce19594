// Package details renders the full "View Details" page for a listing.
package details

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jask/propcompare/internal/format"
	"github.com/jask/propcompare/internal/listing"
)

// Markdown describes p as a markdown document with amounts in symbol.
func Markdown(p listing.Property, symbol string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	fmt.Fprintf(&b, "**%s** · %s\n\n", format.Listing(symbol, p.Price), p.Location)

	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| BHK | %d |\n", p.BHK)
	fmt.Fprintf(&b, "| Area | %d sq.ft |\n", p.Sqft)
	if p.Sqft > 0 {
		fmt.Fprintf(&b, "| Price per sq.ft | %s |\n", format.Currency(symbol, float64(p.Price)/float64(p.Sqft)))
	}
	rera := "No"
	if p.RERAApproved {
		rera = "Yes"
	}
	fmt.Fprintf(&b, "| RERA Approved | %s |\n", rera)
	fmt.Fprintf(&b, "| Year Built | %d |\n", p.YearBuilt)
	fmt.Fprintf(&b, "| Furnishing | %s |\n", p.Furnishing)
	fmt.Fprintf(&b, "| Parking | %s |\n", format.Count(p.Parking, "Space", "Spaces"))

	if len(p.Amenities) > 0 {
		b.WriteString("\n## Amenities\n\n")
		for _, a := range p.Amenities {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}
	if p.Image != "" {
		fmt.Fprintf(&b, "\n[Photo](%s)\n", p.Image)
	}
	return b.String()
}

// Render formats p for a terminal of the given width. style is a glamour
// standard style name ("dark", "light", "notty"); empty picks one from the
// terminal.
func Render(p listing.Property, symbol string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(20, width))}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("details renderer: %w", err)
	}
	out, err := r.Render(Markdown(p, symbol))
	if err != nil {
		return "", fmt.Errorf("render details: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

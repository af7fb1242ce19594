package compare

import (
	"fmt"
	"strconv"

	"github.com/jask/propcompare/internal/format"
	"github.com/jask/propcompare/internal/listing"
)

// EmptyPrompt is shown in place of every view while nothing is selected.
const EmptyPrompt = "No properties selected for comparison. Add properties to compare their features side by side."

// ActionLabel is the caption of the per-property action.
const ActionLabel = "View Details"

// Row labels, in table order.
const (
	LabelPrice      = "Price"
	LabelLocation   = "Location"
	LabelBHK        = "BHK"
	LabelArea       = "Area"
	LabelRERA       = "RERA Approved"
	LabelYearBuilt  = "Year Built"
	LabelFurnishing = "Furnishing"
	LabelParking    = "Parking"
	LabelAmenities  = "Amenities"
	LabelActions    = ""
)

// RowKind tells the renderer how to draw a row's cells.
type RowKind int

const (
	KindText RowKind = iota
	KindPrice
	KindCheck
	KindTags
	KindAction
)

// Cell is one value in a row.
type Cell struct {
	Text string
	// OK is the flag behind a KindCheck cell.
	OK   bool
	Tags []string
}

// Row is one attribute across the selection.
type Row struct {
	Label string
	Kind  RowKind
	Cells []Cell
}

// Card is a compact summary of a selected property.
type Card struct {
	ID       int
	Title    string
	Location string
	BHK      string
	Price    string
}

// AddSlot is the trailing "add" affordance of the summary strip.
type AddSlot struct {
	Remaining int
	Caption   string
}

// Summary is the strip of selected cards.
type Summary struct {
	Cards []Card
	// Add is nil when the selection is full.
	Add *AddSlot
}

// Table is the side-by-side view. Headers[0] labels the feature column.
type Table struct {
	Headers []string
	Rows    []Row
}

// Mobile is the single-card view over selected[cursor].
type Mobile struct {
	ID          int
	Title       string
	Index       int
	Total       int
	Pagination  string
	ShowNav     bool
	PrevEnabled bool
	NextEnabled bool
	Rows        []Row
	Action      string
}

// Snapshot is every view derived from one state of the store. When Empty is
// set the other fields are zero and only the empty prompt is shown.
type Snapshot struct {
	Empty   bool
	Prompt  string
	Summary Summary
	Table   Table
	Mobile  Mobile
}

// Snapshot derives all views from the current selection.
func (s *Store) Snapshot() Snapshot {
	if len(s.selected) == 0 {
		return Snapshot{Empty: true, Prompt: EmptyPrompt}
	}
	return Snapshot{
		Summary: buildSummary(s.selected, s.currency),
		Table:   buildTable(s.selected, s.currency),
		Mobile:  buildMobile(s.selected, s.cursor, s.currency),
	}
}

// AddCaption describes the remaining capacity.
func AddCaption(selected int) string {
	if selected == 0 {
		return fmt.Sprintf("Select up to %d properties", MaxSelected)
	}
	n := MaxSelected - selected
	return fmt.Sprintf("%d more %s available", n, format.Plural(n, "slot", "slots"))
}

func buildSummary(sel []listing.Property, symbol string) Summary {
	out := Summary{Cards: make([]Card, 0, len(sel))}
	for _, p := range sel {
		out.Cards = append(out.Cards, Card{
			ID:       p.ID,
			Title:    p.Title,
			Location: p.Location,
			BHK:      bhk(p),
			Price:    format.Listing(symbol, p.Price),
		})
	}
	if len(sel) < MaxSelected {
		out.Add = &AddSlot{Remaining: MaxSelected - len(sel), Caption: AddCaption(len(sel))}
	}
	return out
}

func buildTable(sel []listing.Property, symbol string) Table {
	headers := make([]string, 0, len(sel)+1)
	headers = append(headers, "Features")
	for _, p := range sel {
		headers = append(headers, p.Title)
	}
	rows := attributeRows(sel, symbol)
	action := Row{Label: LabelActions, Kind: KindAction}
	for range sel {
		action.Cells = append(action.Cells, Cell{Text: ActionLabel})
	}
	return Table{Headers: headers, Rows: append(rows, action)}
}

func buildMobile(sel []listing.Property, cursor int, symbol string) Mobile {
	p := sel[cursor]
	total := len(sel)
	return Mobile{
		ID:          p.ID,
		Title:       p.Title,
		Index:       cursor,
		Total:       total,
		Pagination:  fmt.Sprintf("%d of %d", cursor+1, total),
		ShowNav:     total > 1,
		PrevEnabled: total > 1 && cursor > 0,
		NextEnabled: total > 1 && cursor < total-1,
		Rows:        attributeRows([]listing.Property{p}, symbol),
		Action:      ActionLabel,
	}
}

// attributeRows builds every attribute row in display order, one cell per
// property.
func attributeRows(sel []listing.Property, symbol string) []Row {
	row := func(label string, kind RowKind, cell func(listing.Property) Cell) Row {
		r := Row{Label: label, Kind: kind, Cells: make([]Cell, 0, len(sel))}
		for _, p := range sel {
			r.Cells = append(r.Cells, cell(p))
		}
		return r
	}
	text := func(fn func(listing.Property) string) func(listing.Property) Cell {
		return func(p listing.Property) Cell { return Cell{Text: fn(p)} }
	}
	return []Row{
		row(LabelPrice, KindPrice, text(func(p listing.Property) string { return format.Listing(symbol, p.Price) })),
		row(LabelLocation, KindText, text(func(p listing.Property) string { return p.Location })),
		row(LabelBHK, KindText, text(bhk)),
		row(LabelArea, KindText, text(func(p listing.Property) string { return fmt.Sprintf("%d sq.ft", p.Sqft) })),
		row(LabelRERA, KindCheck, func(p listing.Property) Cell {
			if p.RERAApproved {
				return Cell{Text: "Yes", OK: true}
			}
			return Cell{Text: "No"}
		}),
		row(LabelYearBuilt, KindText, text(func(p listing.Property) string { return strconv.Itoa(p.YearBuilt) })),
		row(LabelFurnishing, KindText, text(func(p listing.Property) string { return p.Furnishing })),
		row(LabelParking, KindText, text(func(p listing.Property) string { return format.Count(p.Parking, "Space", "Spaces") })),
		row(LabelAmenities, KindTags, func(p listing.Property) Cell {
			return Cell{Tags: append([]string(nil), p.Amenities...)}
		}),
	}
}

func bhk(p listing.Property) string { return fmt.Sprintf("%d BHK", p.BHK) }

// Package compare owns the set of properties under comparison and derives
// the summary, table and single-card views from it.
package compare

import "github.com/jask/propcompare/internal/listing"

// MaxSelected is the comparison capacity.
const MaxSelected = 3

// Lookup resolves a property id against the catalog.
type Lookup interface {
	ByID(id int) (listing.Property, bool)
}

// ToggleResult reports what Toggle did.
type ToggleResult int

const (
	// Unknown means the id is not in the catalog; nothing changed.
	Unknown ToggleResult = iota
	// Added means the property was appended to the selection.
	Added
	// Removed means the property was already selected and was dropped.
	Removed
	// Rejected means the selection is full; nothing changed.
	Rejected
)

func (r ToggleResult) String() string {
	switch r {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Direction moves the single-card cursor.
type Direction int

const (
	// Prev moves the cursor one card back.
	Prev Direction = iota
	// Next moves the cursor one card forward.
	Next
)

// Store is the single source of truth for the comparison set. It is not
// safe for concurrent use; the UI loop drives it from one goroutine.
type Store struct {
	catalog  Lookup
	selected []listing.Property
	cursor   int
	currency string
}

// NewStore returns an empty store backed by catalog.
func NewStore(catalog Lookup) *Store {
	return &Store{catalog: catalog, currency: "₹"}
}

// SetCurrency sets the symbol prices carry in snapshots. Empty keeps the
// current one.
func (s *Store) SetCurrency(symbol string) {
	if symbol != "" {
		s.currency = symbol
	}
}

// Toggle removes id when selected, otherwise appends it if there is room.
func (s *Store) Toggle(id int) ToggleResult {
	if s.indexOf(id) >= 0 {
		s.Remove(id)
		return Removed
	}
	p, ok := s.catalog.ByID(id)
	if !ok {
		return Unknown
	}
	if len(s.selected) >= MaxSelected {
		return Rejected
	}
	s.selected = append(s.selected, p)
	s.clampCursor()
	return Added
}

// Remove drops id from the selection. Unknown ids are ignored.
func (s *Store) Remove(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.selected = append(s.selected[:i:i], s.selected[i+1:]...)
	s.clampCursor()
	return true
}

// Clear empties the selection.
func (s *Store) Clear() {
	s.selected = nil
	s.cursor = 0
}

// Navigate moves the cursor one step, stopping at either end.
func (s *Store) Navigate(dir Direction) {
	if len(s.selected) == 0 {
		return
	}
	switch dir {
	case Prev:
		s.cursor = max(0, s.cursor-1)
	case Next:
		s.cursor = min(len(s.selected)-1, s.cursor+1)
	}
}

// SetCursor moves the cursor to i, clamped to the selection.
func (s *Store) SetCursor(i int) {
	s.cursor = i
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.clampCursor()
}

func (s *Store) clampCursor() {
	if s.cursor >= len(s.selected) {
		s.cursor = max(0, len(s.selected)-1)
	}
}

func (s *Store) indexOf(id int) int {
	for i, p := range s.selected {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is selected.
func (s *Store) Contains(id int) bool { return s.indexOf(id) >= 0 }

// Len is the number of selected properties.
func (s *Store) Len() int { return len(s.selected) }

// Remaining is the number of free slots.
func (s *Store) Remaining() int { return MaxSelected - len(s.selected) }

// Cursor is the index shown by the single-card view.
func (s *Store) Cursor() int { return s.cursor }

// Selected returns a copy of the selection in insertion order.
func (s *Store) Selected() []listing.Property {
	out := make([]listing.Property, len(s.selected))
	for i, p := range s.selected {
		out[i] = p.Clone()
	}
	return out
}

// IDs returns the selected ids in order.
func (s *Store) IDs() []int {
	out := make([]int, len(s.selected))
	for i, p := range s.selected {
		out[i] = p.ID
	}
	return out
}

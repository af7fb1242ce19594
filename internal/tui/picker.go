package tui

import (
	"github.com/jask/propcompare/internal/catalog"
	"github.com/jask/propcompare/internal/listing"
)

// pickerState is the catalog modal. Rows are re-derived from the catalog
// whenever the query changes.
type pickerState struct {
	query     string
	filtering bool
	cursor    int
	rows      []listing.Property
}

func newPicker(c *catalog.Catalog) *pickerState {
	p := &pickerState{}
	p.refresh(c)
	return p
}

func (p *pickerState) refresh(c *catalog.Catalog) {
	if c == nil {
		p.rows = nil
	} else {
		p.rows = c.Search(p.query)
	}
	p.clamp()
}

func (p *pickerState) clamp() {
	if p.cursor >= len(p.rows) {
		p.cursor = max(0, len(p.rows)-1)
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *pickerState) up() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *pickerState) down() {
	if p.cursor < len(p.rows)-1 {
		p.cursor++
	}
}

func (p *pickerState) current() (listing.Property, bool) {
	if len(p.rows) == 0 {
		return listing.Property{}, false
	}
	return p.rows[p.cursor], true
}

func (p *pickerState) setQuery(q string, c *catalog.Catalog) {
	p.query = q
	p.refresh(c)
}

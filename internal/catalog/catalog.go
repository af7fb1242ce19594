// Package catalog holds the read-only set of listings available for
// comparison.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/propcompare/internal/listing"
)

// Source supplies listings at startup.
type Source interface {
	List(ctx context.Context) ([]listing.Property, error)
}

// Catalog is an immutable, id-indexed list of properties in display order.
type Catalog struct {
	items []listing.Property
	byID  map[int]int
}

// New builds a catalog from properties. Later duplicates of an id are dropped.
func New(props []listing.Property) *Catalog {
	c := &Catalog{byID: make(map[int]int, len(props))}
	for _, p := range props {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.items)
		c.items = append(c.items, p.Clone())
	}
	return c
}

// Load reads every property from src.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	props, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(props), nil
}

// Len reports the number of listings.
func (c *Catalog) Len() int { return len(c.items) }

// All returns copies of every listing in display order.
func (c *Catalog) All() []listing.Property {
	out := make([]listing.Property, len(c.items))
	for i, p := range c.items {
		out[i] = p.Clone()
	}
	return out
}

// ByID looks up a listing.
func (c *Catalog) ByID(id int) (listing.Property, bool) {
	i, ok := c.byID[id]
	if !ok {
		return listing.Property{}, false
	}
	return c.items[i].Clone(), true
}

// Search returns listings whose title or location matches every word of
// query. Words of four or more letters also match a word one edit away, so
// "Bangalre" still finds Bangalore. An empty query returns everything.
func (c *Catalog) Search(query string) []listing.Property {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return c.All()
	}
	var out []listing.Property
	for _, p := range c.items {
		if matchesAll(p, terms) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func matchesAll(p listing.Property, terms []string) bool {
	hay := strings.ToLower(p.Title + " " + p.Location)
	words := strings.FieldsFunc(hay, func(r rune) bool {
		return r == ' ' || r == ','
	})
	for _, term := range terms {
		if !matchesTerm(hay, words, term) {
			return false
		}
	}
	return true
}

func matchesTerm(hay string, words []string, term string) bool {
	if strings.Contains(hay, term) {
		return true
	}
	if len([]rune(term)) < 4 {
		return false
	}
	for _, w := range words {
		if levenshtein.ComputeDistance(w, term) <= 1 {
			return true
		}
	}
	return false
}

// Package testdata builds synthetic listings for demos and large-catalog tests.
package testdata

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/jask/propcompare/internal/listing"
)

// Upserter stores generated listings.
type Upserter interface {
	Upsert(ctx context.Context, p listing.Property) error
}

var (
	cities = []string{
		"Mumbai, Maharashtra", "Pune, Maharashtra", "Bangalore, Karnataka",
		"Hyderabad, Telangana", "Gurgaon, Haryana", "Chennai, Tamil Nadu",
		"Kolkata, West Bengal", "North Goa, Goa", "Ahmedabad, Gujarat",
	}
	kinds      = []string{"Apartment", "Villa", "Penthouse", "Studio", "Row House", "Duplex"}
	adjectives = []string{"Luxury", "Modern", "Cozy", "Spacious", "Premium", "Affordable", "Sea-Facing", "Garden"}
	furnishing = []string{"Unfurnished", "Semi-Furnished", "Fully Furnished"}
	amenities  = []string{
		"Swimming Pool", "Gym", "24/7 Security", "Power Backup", "Club House",
		"Garden", "Children's Play Area", "Jogging Track", "Lift", "Intercom",
	}
)

// Generate returns n listings with ids starting at firstID. The same seed
// always yields the same listings.
func Generate(seed uint64, n, firstID int) []listing.Property {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]listing.Property, 0, n)
	for i := range n {
		city := cities[r.IntN(len(cities))]
		bhk := 1 + r.IntN(5)
		sqft := 400 + bhk*300 + r.IntN(600)
		perSqft := int64(4000 + r.IntN(16000))

		picked := r.Perm(len(amenities))[:r.IntN(6)]
		names := make([]string, 0, len(picked))
		for _, j := range picked {
			names = append(names, amenities[j])
		}

		out = append(out, listing.Property{
			ID:           firstID + i,
			Title:        fmt.Sprintf("%s %s in %s", adjectives[r.IntN(len(adjectives))], kinds[r.IntN(len(kinds))], cityName(city)),
			Location:     city,
			Price:        int64(sqft) * perSqft,
			BHK:          bhk,
			Sqft:         sqft,
			RERAApproved: r.IntN(4) != 0,
			Amenities:    names,
			YearBuilt:    2005 + r.IntN(20),
			Furnishing:   furnishing[r.IntN(len(furnishing))],
			Parking:      r.IntN(bhk + 1),
		})
	}
	return out
}

func cityName(location string) string {
	for i, c := range location {
		if c == ',' {
			return location[:i]
		}
	}
	return location
}

// Seed generates n listings and stores each through repo.
func Seed(ctx context.Context, repo Upserter, seed uint64, n, firstID int) ([]listing.Property, error) {
	props := Generate(seed, n, firstID)
	for _, p := range props {
		if err := repo.Upsert(ctx, p); err != nil {
			return nil, fmt.Errorf("seed property %d: %w", p.ID, err)
		}
	}
	return props, nil
}

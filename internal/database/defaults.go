package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/propcompare/internal/database/repository"
	"github.com/jask/propcompare/internal/listing"
)

// DefaultProperties returns the sample listings seeded into a new database.
func DefaultProperties() []listing.Property {
	return []listing.Property{
		{
			ID:           1,
			Title:        "Luxury Apartment in South Mumbai",
			Location:     "Mumbai, Maharashtra",
			Price:        9500000,
			BHK:          3,
			Sqft:         1800,
			RERAApproved: true,
			Image:        "https://via.placeholder.com/400x250?text=Mumbai%20Apartment",
			Amenities:    []string{"Swimming Pool", "Gym", "24/7 Security", "Power Backup", "Club House"},
			YearBuilt:    2020,
			Furnishing:   "Semi-Furnished",
			Parking:      2,
		},
		{
			ID:           2,
			Title:        "Modern Villa in Whitefield",
			Location:     "Bangalore, Karnataka",
			Price:        12000000,
			BHK:          4,
			Sqft:         2500,
			RERAApproved: true,
			Image:        "https://via.placeholder.com/400x250?text=Bangalore%20Villa",
			Amenities:    []string{"Garden", "Swimming Pool", "Gym", "24/7 Security", "Club House", "Children's Play Area"},
			YearBuilt:    2021,
			Furnishing:   "Fully Furnished",
			Parking:      3,
		},
		{
			ID:           3,
			Title:        "Spacious Flat in Gurgaon",
			Location:     "Gurgaon, Haryana",
			Price:        7500000,
			BHK:          3,
			Sqft:         1600,
			RERAApproved: true,
			Image:        "https://via.placeholder.com/400x250?text=Gurgaon%20Flat",
			Amenities:    []string{"Gym", "24/7 Security", "Power Backup"},
			YearBuilt:    2019,
			Furnishing:   "Unfurnished",
			Parking:      1,
		},
		{
			ID:           4,
			Title:        "Penthouse in Banjara Hills",
			Location:     "Hyderabad, Telangana",
			Price:        15000000,
			BHK:          4,
			Sqft:         3000,
			RERAApproved: false,
			Image:        "https://via.placeholder.com/400x250?text=Hyderabad%20Penthouse",
			Amenities:    []string{"Terrace Garden", "Swimming Pool", "Gym", "24/7 Security", "Club House", "Spa"},
			YearBuilt:    2022,
			Furnishing:   "Fully Furnished",
			Parking:      2,
		},
		{
			ID:           5,
			Title:        "Garden Apartment in Koregaon Park",
			Location:     "Pune, Maharashtra",
			Price:        6500000,
			BHK:          2,
			Sqft:         1200,
			RERAApproved: true,
			Image:        "https://via.placeholder.com/400x250?text=Pune%20Apartment",
			Amenities:    []string{"Garden", "24/7 Security", "Power Backup"},
			YearBuilt:    2018,
			Furnishing:   "Semi-Furnished",
			Parking:      1,
		},
		{
			ID:           6,
			Title:        "Beachside Villa in Goa",
			Location:     "North Goa, Goa",
			Price:        18000000,
			BHK:          5,
			Sqft:         3500,
			RERAApproved: false,
			Image:        "https://via.placeholder.com/400x250?text=Goa%20Villa",
			Amenities:    []string{"Private Beach Access", "Swimming Pool", "Garden", "24/7 Security", "Outdoor Kitchen"},
			YearBuilt:    2021,
			Furnishing:   "Fully Furnished",
			Parking:      4,
		},
	}
}

// SeedDefaults inserts the sample listings when the catalog is empty, all in
// one transaction. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	n, err := repository.NewPropertyRepo(db).Count(ctx)
	if err != nil {
		return fmt.Errorf("count properties: %w", err)
	}
	if n > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, p := range DefaultProperties() {
			if err := repository.UpsertTx(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

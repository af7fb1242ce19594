package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/propcompare/internal/listing"
)

// ErrNotFound is returned when a property id has no row.
var ErrNotFound = errors.New("repository: not found")

// PropertyRepo handles properties and their ordered amenities.
type PropertyRepo struct {
	db *sql.DB
}

func NewPropertyRepo(db *sql.DB) *PropertyRepo { return &PropertyRepo{db: db} }

// AmenityID derives the stable id stored for an amenity name.
func AmenityID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("amenity:"+name)).String()
}

// Upsert writes p and replaces its amenity list, keeping the given order.
func (r *PropertyRepo) Upsert(ctx context.Context, p listing.Property) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := UpsertTx(ctx, tx, p); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// UpsertTx is Upsert inside a caller's transaction.
func UpsertTx(ctx context.Context, tx *sql.Tx, p listing.Property) error {
	if err := upsertProperty(ctx, tx, p); err != nil {
		return fmt.Errorf("upsert property %d: %w", p.ID, err)
	}
	return nil
}

func upsertProperty(ctx context.Context, tx *sql.Tx, p listing.Property) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO properties(id, title, location, furnishing, price, bhk, sqft, year_built, parking, rera_approved, image)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 location=excluded.location,
	 furnishing=excluded.furnishing,
	 price=excluded.price,
	 bhk=excluded.bhk,
	 sqft=excluded.sqft,
	 year_built=excluded.year_built,
	 parking=excluded.parking,
	 rera_approved=excluded.rera_approved,
	 image=excluded.image;
	`, p.ID, p.Title, p.Location, p.Furnishing, p.Price, p.BHK, p.Sqft, p.YearBuilt, p.Parking, p.RERAApproved, p.Image)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM property_amenities WHERE property_id = ?`, p.ID); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(p.Amenities))
	for pos, name := range p.Amenities {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		id := AmenityID(name)
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO amenities(id, name) VALUES (?, ?)`, id, name); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO property_amenities(property_id, amenity_id, position) VALUES (?, ?, ?)
		`, p.ID, id, pos); err != nil {
			return err
		}
	}
	return nil
}

// List returns every property ordered by id, amenities included.
func (r *PropertyRepo) List(ctx context.Context) ([]listing.Property, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, location, furnishing, price, bhk, sqft, year_built, parking, rera_approved, image
	FROM properties ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []listing.Property
	index := map[int]int{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	amenities, err := r.amenities(ctx, 0)
	if err != nil {
		return nil, err
	}
	for id, names := range amenities {
		if i, ok := index[id]; ok {
			out[i].Amenities = names
		}
	}
	return out, nil
}

// Get returns one property or ErrNotFound.
func (r *PropertyRepo) Get(ctx context.Context, id int) (listing.Property, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, title, location, furnishing, price, bhk, sqft, year_built, parking, rera_approved, image
	FROM properties WHERE id = ?`, id)
	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return listing.Property{}, ErrNotFound
		}
		return listing.Property{}, err
	}
	amenities, err := r.amenities(ctx, id)
	if err != nil {
		return listing.Property{}, err
	}
	p.Amenities = amenities[id]
	return p, nil
}

// Count returns the number of stored properties.
func (r *PropertyRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&n)
	return n, err
}

// Delete removes a property; its amenity links cascade.
func (r *PropertyRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// amenities loads ordered amenity names keyed by property id. A zero id
// loads every property.
func (r *PropertyRepo) amenities(ctx context.Context, id int) (map[int][]string, error) {
	query := `
	SELECT pa.property_id, a.name
	FROM property_amenities pa
	JOIN amenities a ON a.id = pa.amenity_id`
	var args []interface{}
	if id != 0 {
		query += " WHERE pa.property_id = ?"
		args = append(args, id)
	}
	query += " ORDER BY pa.property_id, pa.position"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[int][]string{}
	for rows.Next() {
		var pid int
		var name string
		if err := rows.Scan(&pid, &name); err != nil {
			return nil, err
		}
		out[pid] = append(out[pid], name)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(s scanner) (listing.Property, error) {
	var p listing.Property
	err := s.Scan(&p.ID, &p.Title, &p.Location, &p.Furnishing, &p.Price, &p.BHK, &p.Sqft,
		&p.YearBuilt, &p.Parking, &p.RERAApproved, &p.Image)
	return p, err
}

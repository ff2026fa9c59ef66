package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urban-refuge/aidfinder/internal/core/domain"
	"github.com/urban-refuge/aidfinder/internal/core/ports/driven"
)

// serviceStore implements driven.ServiceStore on top of the services table.
// Slice-valued fields are stored as JSON text columns.
type serviceStore struct {
	store *Store
}

var _ driven.ServiceStore = (*serviceStore)(nil)

const serviceColumns = `id, name, service_types, extra_filters, demographic,
	website, summary, addresses, coordinates, neighborhoods, hours, phone,
	languages, google_link`

// ListAll returns every persisted record. Records loaded here always carry
// domain.SourceLocalStore.
func (s *serviceStore) ListAll(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.store.db.QueryContext(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%w: listing services: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		rec, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning service row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating services: %v", domain.ErrStoreUnavailable, err)
	}

	return records, nil
}

// Save stores or updates a record keyed by its ID.
func (s *serviceStore) Save(ctx context.Context, rec *domain.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	serviceTypes, err := marshalSlice(rec.ServiceTypes)
	if err != nil {
		return err
	}
	extraFilters, err := marshalSlice(rec.ExtraFilters)
	if err != nil {
		return err
	}
	addresses, err := marshalSlice(rec.Addresses)
	if err != nil {
		return err
	}
	coordinates, err := json.Marshal(coordinatePairs(rec.Coordinates))
	if err != nil {
		return fmt.Errorf("encoding coordinates: %w", err)
	}
	neighborhoods, err := marshalSlice(rec.Neighborhoods)
	if err != nil {
		return err
	}
	languages, err := marshalSlice(rec.Languages)
	if err != nil {
		return err
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO services (
			id, name, service_types, extra_filters, demographic, website,
			summary, addresses, coordinates, neighborhoods, hours, phone,
			languages, google_link
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			service_types = excluded.service_types,
			extra_filters = excluded.extra_filters,
			demographic = excluded.demographic,
			website = excluded.website,
			summary = excluded.summary,
			addresses = excluded.addresses,
			coordinates = excluded.coordinates,
			neighborhoods = excluded.neighborhoods,
			hours = excluded.hours,
			phone = excluded.phone,
			languages = excluded.languages,
			google_link = excluded.google_link,
			updated_at = CURRENT_TIMESTAMP
	`, rec.ID, rec.Name, serviceTypes, extraFilters, rec.Demographic,
		rec.Website, rec.Summary, addresses, string(coordinates),
		neighborhoods, rec.Hours, rec.Phone, languages, rec.GoogleLink)
	if err != nil {
		return fmt.Errorf("%w: saving service %s: %v", domain.ErrStoreUnavailable, rec.ID, err)
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanService.
type scanner interface {
	Scan(dest ...any) error
}

func scanService(row scanner) (domain.Record, error) {
	var rec domain.Record
	var serviceTypes, extraFilters, addresses, coordinates, neighborhoods, languages string

	err := row.Scan(&rec.ID, &rec.Name, &serviceTypes, &extraFilters,
		&rec.Demographic, &rec.Website, &rec.Summary, &addresses,
		&coordinates, &neighborhoods, &rec.Hours, &rec.Phone,
		&languages, &rec.GoogleLink)
	if err != nil {
		return domain.Record{}, err
	}

	if err := unmarshalSlice(serviceTypes, &rec.ServiceTypes); err != nil {
		return domain.Record{}, err
	}
	if err := unmarshalSlice(extraFilters, &rec.ExtraFilters); err != nil {
		return domain.Record{}, err
	}
	if err := unmarshalSlice(addresses, &rec.Addresses); err != nil {
		return domain.Record{}, err
	}
	if err := unmarshalSlice(neighborhoods, &rec.Neighborhoods); err != nil {
		return domain.Record{}, err
	}
	if err := unmarshalSlice(languages, &rec.Languages); err != nil {
		return domain.Record{}, err
	}

	var pairs [][2]float64
	if err := json.Unmarshal([]byte(coordinates), &pairs); err != nil {
		return domain.Record{}, fmt.Errorf("decoding coordinates: %w", err)
	}
	for _, p := range pairs {
		rec.Coordinates = append(rec.Coordinates, domain.Coordinate{Lat: p[0], Lon: p[1]})
	}

	rec.Source = domain.SourceLocalStore
	return rec, nil
}

// coordinatePairs flattens coordinates into [lat, lon] pairs so the stored
// JSON stays readable and order-stable.
func coordinatePairs(coords []domain.Coordinate) [][2]float64 {
	pairs := make([][2]float64, 0, len(coords))
	for _, c := range coords {
		pairs = append(pairs, [2]float64{c.Lat, c.Lon})
	}
	return pairs
}

func marshalSlice(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encoding slice column: %w", err)
	}
	return string(data), nil
}

func unmarshalSlice(data string, dest *[]string) error {
	if data == "" {
		*dest = nil
		return nil
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("decoding slice column: %w", err)
	}
	if len(*dest) == 0 {
		*dest = nil
	}
	return nil
}

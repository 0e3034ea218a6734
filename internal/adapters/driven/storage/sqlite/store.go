package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.TripSource = (*Store)(nil)

// Store reads trips from a SQLite database.
type Store struct {
	db           *sql.DB
	path         string
	durationUnit string
}

// NewStore opens the database at path read-only.
func NewStore(path, durationUnit string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("database %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("checking database: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &Store{
		db:           db,
		path:         path,
		durationUnit: durationUnit,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Describe returns the database path and the city's key.
func (s *Store) Describe(city domain.City) string {
	return fmt.Sprintf("%s (city = %q)", s.path, city)
}

// Load reads every trip of the city.
func (s *Store) Load(ctx context.Context, city domain.City) (*domain.TripTable, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT start_time, end_time, trip_duration, start_station, end_station,
			user_type, gender, birth_year
		FROM trips WHERE city = ? ORDER BY rowid
	`, city.String())
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	schema := domain.Schema{DurationUnit: s.durationUnit}
	var trips []domain.Trip
	for rows.Next() {
		rec, err := scanTrip(rows, &schema)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(trips)+1, err)
		}
		trips = append(trips, domain.NewTrip(rec))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}

	if len(trips) == 0 {
		return nil, fmt.Errorf("no trips for %s: %w", city.Name(), domain.ErrNotFound)
	}

	logger.Debug("Read %d %s trips from %s", len(trips), city.Name(), s.path)
	return domain.NewTripTable(city, schema, trips), nil
}

// scanTrip reads one row and marks the optional columns it carries in schema.
func scanTrip(rows *sql.Rows, schema *domain.Schema) (domain.TripRecord, error) {
	var rec domain.TripRecord
	var startTime string
	var endTime, gender sql.NullString
	var birthYear sql.NullFloat64

	if err := rows.Scan(&startTime, &endTime, &rec.Duration, &rec.StartStation,
		&rec.EndStation, &rec.UserType, &gender, &birthYear); err != nil {
		return rec, fmt.Errorf("scanning trip: %w", err)
	}

	start, err := domain.ParseTimestamp(startTime)
	if err != nil {
		return rec, fmt.Errorf("start_time: %w", err)
	}
	rec.StartTime = start

	if value := strings.TrimSpace(endTime.String); endTime.Valid && value != "" {
		end, err := domain.ParseTimestamp(value)
		if err != nil {
			return rec, fmt.Errorf("end_time: %w", err)
		}
		rec.EndTime = end
		schema.HasEndTime = true
	}

	if value := strings.TrimSpace(gender.String); gender.Valid && value != "" {
		rec.Gender = value
		schema.HasGender = true
	}

	if birthYear.Valid && birthYear.Float64 > 0 {
		rec.BirthYear = int(birthYear.Float64)
		schema.HasBirthYear = true
	}

	return rec, nil
}

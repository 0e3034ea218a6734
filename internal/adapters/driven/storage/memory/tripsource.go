package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
)

// Ensure TripSource implements the interface.
var _ driven.TripSource = (*TripSource)(nil)

type cityData struct {
	schema  domain.Schema
	records []domain.TripRecord
	err     error
}

// TripSource is an in-memory implementation of driven.TripSource.
type TripSource struct {
	mu     sync.RWMutex
	cities map[domain.City]cityData
	loads  map[domain.City]int
}

// NewTripSource creates an empty in-memory trip source.
func NewTripSource() *TripSource {
	return &TripSource{
		cities: make(map[domain.City]cityData),
		loads:  make(map[domain.City]int),
	}
}

// Put sets the records served for a city, replacing earlier ones.
// Tables already loaded are unaffected.
func (s *TripSource) Put(city domain.City, schema domain.Schema, records []domain.TripRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities[city] = cityData{schema: schema, records: slices.Clone(records)}
}

// Fail makes subsequent loads of city return err.
func (s *TripSource) Fail(city domain.City, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities[city] = cityData{err: err}
}

// Load builds a fresh table from the stored records.
func (s *TripSource) Load(ctx context.Context, city domain.City) (*domain.TripTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads[city]++

	data, ok := s.cities[city]
	if !ok {
		return nil, fmt.Errorf("%s: %w", city, domain.ErrNotFound)
	}
	if data.err != nil {
		return nil, data.err
	}

	trips := make([]domain.Trip, 0, len(data.records))
	for _, rec := range data.records {
		trips = append(trips, domain.NewTrip(rec))
	}
	return domain.NewTripTable(city, data.schema, trips), nil
}

// Describe names the in-memory dataset.
func (s *TripSource) Describe(city domain.City) string {
	return "memory:" + city.String()
}

// Loads returns how many times Load was called for city.
func (s *TripSource) Loads(city domain.City) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loads[city]
}

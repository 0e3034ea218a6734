package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.TripSource = (*Source)(nil)

// Column names as they appear in the header row.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{ColStartTime, ColStartStation, ColEndStation, ColTripDuration, ColUserType}

// Birth years outside this range are treated as unknown.
const (
	minBirthYear = 1
	maxBirthYear = 9999
)

// ErrNoDuration marks a row whose trip duration is blank or not a finite number.
// Such rows are left out of the table unless the source is strict.
var ErrNoDuration = errors.New("no usable trip duration")

// Source reads city CSV files from a directory.
type Source struct {
	dir          string
	files        map[domain.City]string
	durationUnit string
	strict       bool
}

// NewSource creates a CSV trip source rooted at dir.
// files overrides the file name per city; cities not in files use
// City.FileName. Relative names resolve against dir.
func NewSource(dir string, files map[domain.City]string, durationUnit string) *Source {
	return &Source{dir: dir, files: files, durationUnit: durationUnit}
}

// SetStrict makes rows without a usable trip duration fail the load.
func (s *Source) SetStrict(strict bool) {
	s.strict = strict
}

// Path returns the file the city's trips are read from.
func (s *Source) Path(city domain.City) string {
	name := s.files[city]
	if name == "" {
		name = city.FileName()
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// Describe returns the city's file path.
func (s *Source) Describe(city domain.City) string {
	return s.Path(city)
}

// Load reads and parses the city's file.
func (s *Source) Load(ctx context.Context, city domain.City) (*domain.TripTable, error) {
	path := s.Path(city)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	table, err := read(ctx, city, file, s.durationUnit, s.strict)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return table, nil
}

// header maps column names to their index in a row.
type header map[string]int

func (h header) has(col string) bool {
	_, ok := h[col]
	return ok
}

func (h header) get(row []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Read parses CSV trip data from r, skipping rows without a usable duration.
func Read(ctx context.Context, city domain.City, r io.Reader, durationUnit string) (*domain.TripTable, error) {
	return read(ctx, city, r, durationUnit, false)
}

func read(ctx context.Context, city domain.City, r io.Reader, durationUnit string, strict bool) (*domain.TripTable, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	names, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", domain.ErrMissingColumn)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(header, len(names))
	for i, name := range names {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name != "" {
			cols[name] = i
		}
	}
	for _, col := range requiredColumns {
		if !cols.has(col) {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingColumn, col)
		}
	}

	schema := domain.Schema{
		HasEndTime:   cols.has(ColEndTime),
		HasGender:    cols.has(ColGender),
		HasBirthYear: cols.has(ColBirthYear),
		DurationUnit: durationUnit,
	}

	var trips []domain.Trip
	skipped := 0
	for line := 2; ; line++ {
		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := parseRecord(cols, row, schema)
		if !strict && errors.Is(err, ErrNoDuration) {
			logger.Warn("line %d: skipping trip: %v", line, err)
			skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		trips = append(trips, domain.NewTrip(rec))
	}

	if skipped > 0 {
		logger.Warn("Skipped %d %s trips without a usable duration", skipped, city.Name())
	}
	logger.Debug("Parsed %d %s trips", len(trips), city.Name())
	return domain.NewTripTable(city, schema, trips), nil
}

func parseRecord(cols header, row []string, schema domain.Schema) (domain.TripRecord, error) {
	start, err := domain.ParseTimestamp(cols.get(row, ColStartTime))
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("%s: %w", ColStartTime, err)
	}

	raw := cols.get(row, ColTripDuration)
	duration, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return domain.TripRecord{}, fmt.Errorf("%s %q: %w", ColTripDuration, raw, ErrNoDuration)
	}

	rec := domain.TripRecord{
		StartTime:    start,
		StartStation: cols.get(row, ColStartStation),
		EndStation:   cols.get(row, ColEndStation),
		Duration:     duration,
		UserType:     cols.get(row, ColUserType),
	}

	if schema.HasEndTime {
		if raw := cols.get(row, ColEndTime); raw != "" {
			if rec.EndTime, err = domain.ParseTimestamp(raw); err != nil {
				return domain.TripRecord{}, fmt.Errorf("%s: %w", ColEndTime, err)
			}
		}
	}
	if schema.HasGender {
		rec.Gender = cols.get(row, ColGender)
	}
	if schema.HasBirthYear {
		raw := cols.get(row, ColBirthYear)
		if rec.BirthYear, err = parseBirthYear(raw); err != nil {
			logger.Warn("%s %q treated as unknown: %v", ColBirthYear, raw, err)
		}
	}

	return rec, nil
}

// parseBirthYear accepts "1992" and "1992.0"; blank means unknown.
// On error the year is 0.
func parseBirthYear(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || f < minBirthYear || f > maxBirthYear {
		return 0, fmt.Errorf("%w: birth year %q out of range", domain.ErrInvalidInput, s)
	}
	return int(f), nil
}

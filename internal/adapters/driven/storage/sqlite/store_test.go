package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/csvfile"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

const createTrips = `
	CREATE TABLE trips (
		city          TEXT NOT NULL,
		start_time    TEXT NOT NULL,
		end_time      TEXT,
		trip_duration REAL NOT NULL,
		start_station TEXT NOT NULL,
		end_station   TEXT NOT NULL,
		user_type     TEXT NOT NULL,
		gender        TEXT,
		birth_year    REAL
	)
`

type tripRow struct {
	city      string
	start     string
	end       any
	duration  float64
	from      string
	to        string
	userType  string
	gender    any
	birthYear any
}

var fixtureRows = []tripRow{
	{"chicago", "2017-06-23 15:09:32", "2017-06-23 15:14:53", 321, "Wood St & Hubbard St", "Damen Ave & Chicago Ave", "Subscriber", "Male", 1992.0},
	{"chicago", "2017-05-25 18:19:03", "2017-05-25 18:45:53", 1610, "Theater on the Lake", "Sheffield Ave & Waveland Ave", "Subscriber", "Female", 1992.0},
	{"chicago", "2017-01-04 08:27:49", "2017-01-04 08:34:45", 416, "May St & Taylor St", "Wood St & Taylor St", "Customer", nil, nil},
	{"washington", "2017-06-21 08:36:34", "2017-06-21 08:44:43", 489.066, "14th & Belmont St NW", "15th & K St NW", "Subscriber", nil, nil},
}

const fixtureChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
0,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
1,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
2,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,,
`

// setupTestStore writes the fixture rows to a temporary database and opens
// it read-only.
func setupTestStore(t *testing.T, rows []tripRow) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bikeshare.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	_, err = db.Exec(createTrips)
	require.NoError(t, err)

	for _, r := range rows {
		_, err := db.Exec(`
			INSERT INTO trips (city, start_time, end_time, trip_duration, start_station,
				end_station, user_type, gender, birth_year)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, r.city, r.start, r.end, r.duration, r.from, r.to, r.userType, r.gender, r.birthYear)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	store, err := NewStore(path, "seconds")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestNewStore_MissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing.db"), "seconds")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_PathAndDescribe(t *testing.T) {
	store := setupTestStore(t, nil)

	assert.True(t, strings.HasSuffix(store.Path(), "bikeshare.db"))
	assert.Contains(t, store.Describe(domain.CityChicago), store.Path())
	assert.Contains(t, store.Describe(domain.CityChicago), `"chicago"`)
}

func TestStore_Load_WithDemographics(t *testing.T) {
	store := setupTestStore(t, fixtureRows)

	table, err := store.Load(context.Background(), domain.CityChicago)
	require.NoError(t, err)

	require.Equal(t, 3, table.Len())
	assert.Equal(t, domain.Schema{
		HasEndTime:   true,
		HasGender:    true,
		HasBirthYear: true,
		DurationUnit: "seconds",
	}, table.Schema())

	first := table.At(0).Record()
	assert.Equal(t, "Wood St & Hubbard St", first.StartStation)
	assert.Equal(t, domain.GenderMale, first.Gender)
	assert.Equal(t, 1992, first.BirthYear)
	assert.Equal(t, "June", table.At(0).Derived().Month)

	last := table.At(2).Record()
	assert.Empty(t, last.Gender)
	assert.False(t, last.HasBirthYear())
}

func TestStore_Load_WithoutDemographics(t *testing.T) {
	store := setupTestStore(t, fixtureRows)

	table, err := store.Load(context.Background(), domain.CityWashington)
	require.NoError(t, err)

	require.Equal(t, 1, table.Len())
	assert.True(t, table.Schema().HasEndTime)
	assert.False(t, table.Schema().HasGender)
	assert.False(t, table.Schema().HasBirthYear)
	assert.InDelta(t, 489.066, table.At(0).Record().Duration, 0.0001)
}

func TestStore_Load_UnknownCity(t *testing.T) {
	store := setupTestStore(t, fixtureRows)

	_, err := store.Load(context.Background(), domain.CityNewYork)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Load_BadTimestamp(t *testing.T) {
	store := setupTestStore(t, []tripRow{
		{"chicago", "last tuesday", nil, 10, "A", "B", "Subscriber", nil, nil},
	})

	_, err := store.Load(context.Background(), domain.CityChicago)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_time")
}

func TestStore_Load_CancelledContext(t *testing.T) {
	store := setupTestStore(t, fixtureRows)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx, domain.CityChicago)
	assert.Error(t, err)
}

func TestStore_Load_MatchesCSV(t *testing.T) {
	store := setupTestStore(t, fixtureRows)

	fromDB, err := store.Load(context.Background(), domain.CityChicago)
	require.NoError(t, err)

	fromCSV, err := csvfile.Read(context.Background(), domain.CityChicago,
		strings.NewReader(fixtureChicagoCSV), "seconds")
	require.NoError(t, err)

	assert.Equal(t, fromCSV.Schema(), fromDB.Schema())
	assert.Equal(t, fromCSV.Records(0, fromCSV.Len()), fromDB.Records(0, fromDB.Len()))
}

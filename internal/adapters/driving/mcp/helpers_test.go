package mcp

import (
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
)

var (
	chicagoSchema    = domain.Schema{HasEndTime: true, HasGender: true, HasBirthYear: true, DurationUnit: "seconds"}
	washingtonSchema = domain.Schema{HasEndTime: true, DurationUnit: "milliseconds"}
)

// tripRecords returns n daily trips starting Friday March 3 2017 at 09:00.
func tripRecords(n int) []domain.TripRecord {
	base := time.Date(2017, time.March, 3, 9, 0, 0, 0, time.UTC)
	out := make([]domain.TripRecord, n)
	for i := range out {
		start := base.AddDate(0, 0, i)
		out[i] = domain.TripRecord{
			StartTime:    start,
			EndTime:      start.Add(10 * time.Minute),
			StartStation: "Canal St & Madison St",
			EndStation:   "Clinton St & Washington Blvd",
			Duration:     600,
			UserType:     domain.UserTypeSubscriber,
			Gender:       domain.GenderMale,
			BirthYear:    1985,
		}
	}
	return out
}

func newTestServer(t *testing.T) (*Server, *memory.TripSource) {
	t.Helper()
	source := memory.NewTripSource()
	source.Put(domain.CityChicago, chicagoSchema, tripRecords(12))

	washington := tripRecords(3)
	for i := range washington {
		washington[i].Gender = ""
		washington[i].BirthYear = 0
	}
	source.Put(domain.CityWashington, washingtonSchema, washington)

	server, err := NewServer(&Ports{Explorer: services.NewExplorerService(source)})
	require.NoError(t, err)
	return server, source
}

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

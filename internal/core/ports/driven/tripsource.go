package driven

import (
	"context"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// TripSource loads the full trip table for a city.
// Implementations derive calendar fields at load time via domain.NewTrip and
// never hand out a table they will modify later.
type TripSource interface {
	// Load reads every trip recorded for the city.
	Load(ctx context.Context, city domain.City) (*domain.TripTable, error)

	// Describe returns where the city's trips come from, e.g. a file path.
	Describe(city domain.City) string
}

package services

import (
	"fmt"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure BrowseService implements the interface.
var _ driving.BrowseService = (*BrowseService)(nil)

// Ensure TablePager implements the interface.
var _ driving.Pager = (*TablePager)(nil)

// BrowseService pages through the raw rows of a table.
type BrowseService struct{}

// NewBrowseService creates a new browse service.
func NewBrowseService() *BrowseService {
	return &BrowseService{}
}

// Window returns rows [start, start+step) without derived fields.
// A window that would run past the end of the table is rejected whole.
func (s *BrowseService) Window(table *domain.TripTable, start, step int) (domain.Window, error) {
	if err := validateWindow(start, step); err != nil {
		return domain.Window{}, err
	}
	n := table.Len()
	if start > n || step > n-start {
		return domain.Window{}, fmt.Errorf("window of %d rows from %d of %d rows: %w", step, start, n, domain.ErrOutOfBounds)
	}
	return domain.Window{Start: start, Step: step, Rows: table.Records(start, start+step)}, nil
}

// Browse starts paging at start.
func (s *BrowseService) Browse(table *domain.TripTable, start, step int) (driving.Pager, error) {
	if err := validateWindow(start, step); err != nil {
		return nil, err
	}
	logger.Debug("Browsing %d rows from %d in steps of %d", table.Len(), start, step)
	return &TablePager{browse: s, table: table, next: start, step: step}, nil
}

// BrowseFromStart starts paging at the first row.
func (s *BrowseService) BrowseFromStart(table *domain.TripTable, step int) (driving.Pager, error) {
	return s.Browse(table, 0, step)
}

func validateWindow(start, step int) error {
	if start < 0 {
		return fmt.Errorf("%w: start %d is negative", domain.ErrInvalidInput, start)
	}
	if step < 1 {
		return fmt.Errorf("%w: step must be at least 1, got %d", domain.ErrInvalidInput, step)
	}
	return nil
}

// TablePager advances through a table one window at a time.
// It never wraps and never resets.
type TablePager struct {
	browse *BrowseService
	table  *domain.TripTable
	next   int
	step   int
}

// Next returns the current window and advances by one step.
// An out-of-bounds window leaves the position unchanged.
func (p *TablePager) Next() (domain.Window, error) {
	w, err := p.browse.Window(p.table, p.next, p.step)
	if err != nil {
		return domain.Window{}, err
	}
	// Window succeeded, so next+step is at most the table length.
	p.next = w.End()
	return w, nil
}

// Position returns the start index of the next window.
func (p *TablePager) Position() int {
	return p.next
}

// Step returns the window size.
func (p *TablePager) Step() int {
	return p.step
}

package domain

// Window is one page of raw rows.
type Window struct {
	// Start is the index of the first row.
	Start int

	// Step is the window size.
	Step int

	// Rows holds rows [Start, Start+Step).
	Rows []TripRecord
}

// End returns the index one past the last row.
func (w Window) End() int {
	return w.Start + w.Step
}

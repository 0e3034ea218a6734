// Package domain defines the core entities of the bikeshare explorer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - City: one of the three supported bike-share systems
//   - TripRecord: the fields recorded for one rental
//   - Trip: a record plus the fields derived from its start time
//   - TripTable: an immutable, ordered collection of trips for one city
//   - Query: what the user asked for (filter mode and its arguments)
//   - Report: the four statistic groups computed over a table
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

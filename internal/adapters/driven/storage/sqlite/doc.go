// Package sqlite loads trip tables from a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. The database is opened read-only and must contain a trips table:
//
//	CREATE TABLE trips (
//		city          TEXT NOT NULL,
//		start_time    TEXT NOT NULL,
//		end_time      TEXT,
//		trip_duration REAL NOT NULL,
//		start_station TEXT NOT NULL,
//		end_station   TEXT NOT NULL,
//		user_type     TEXT NOT NULL,
//		gender        TEXT,
//		birth_year    REAL
//	);
//
// Rows are returned in rowid order, matching the order they were inserted.
//
// # Schema Flags
//
// A city has an end time, gender or birth year column if at least one of its
// rows carries a non-empty value for it.
package sqlite

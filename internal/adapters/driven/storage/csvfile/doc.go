// Package csvfile loads trip tables from per-city CSV files.
//
// Each city's trips live in one file under a data directory. The header row
// names the columns; an unnamed leading index column is ignored. Required
// columns are Start Time, Start Station, End Station, Trip Duration and
// User Type. End Time, Gender and Birth Year are optional, and their presence
// is recorded in the table's schema.
package csvfile

// Package sqlstore provides the SQL implementations of the data storage
// interfaces defined in the internal/store package.
//
// Queries are written once with '?' placeholders and rebound by sqlx for the
// driver behind the handle, so the same code serves the embedded SQLite
// database and PostgreSQL. Driver errors are translated to store errors by
// MapError.
package sqlstore

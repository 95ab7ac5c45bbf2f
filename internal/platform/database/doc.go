// Package database opens the application's single database handle and
// applies the embedded schema migrations with goose.
//
// Two drivers are supported: the embedded SQLite driver ("sqlite3", the
// default) and PostgreSQL through pgx ("pgx"). Each has its own migration
// directory because the column types differ.
package database

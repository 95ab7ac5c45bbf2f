// Package testdb provides utilities specifically for database testing.
//
// Tests get a real, fully migrated database: a fresh SQLite file in the
// test's temporary directory by default, or the PostgreSQL database named by
// TRACKER_TEST_DB_URL when that variable is set.
package testdb

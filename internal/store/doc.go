// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing the review schedule to remain
// independent of the SQL dialect behind it.
package store

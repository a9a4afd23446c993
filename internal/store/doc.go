// Package store defines interfaces for data persistence operations.
// These interfaces abstract the document database from the HTTP layer so
// handlers can be exercised against an in-memory substitute in tests.
package store

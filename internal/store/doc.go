// Package store defines interfaces for question and answer persistence.
// These interfaces abstract the underlying data storage mechanism from
// the HTTP handlers, so handlers can be exercised against in-memory fakes
// and the Postgres implementation can change without touching them.
package store

// Package postgres provides PostgreSQL-backed implementations of the
// question and answer stores defined in internal/store, the embedded schema
// migrations, and the mapping of driver errors onto store errors.
//
// Stores accept a store.DBTX, so the same code runs on a *sql.DB opened with
// the pgx stdlib driver or on a *sql.Tx in integration tests.
package postgres

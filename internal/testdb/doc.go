//go:build integration

// Package testdb provides utilities for Postgres integration tests.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can share one database and run in parallel:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        questions := postgres.NewPostgresQuestionStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The connection string is read from DATABASE_URL, then FORUM_TEST_DB_URL.
// Tests are skipped when neither is set.
package testdb

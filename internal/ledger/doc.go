// Package ledger persists batch run history in SQLite.
//
// Each batch run becomes one row in runs plus one row per encoder invocation
// in outcomes, which backs the convert-images --history view. The database is
// a convenience record, not coordination state: conversions themselves never
// read it, and deleting it only loses history.
package ledger

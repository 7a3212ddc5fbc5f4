// Package postgres implements the store.Gateway contract on top of a pgx
// connection pool. Each session owns one pooled connection for the lifetime
// of a request and turns every business operation into a single positional
// call to a stored routine of the configured schema.
//
// The package also ships the embedded goose migrations that create the pig
// schema and its routines.
package postgres

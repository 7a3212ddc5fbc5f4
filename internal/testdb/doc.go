// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests using it should carry the integration build tag and are skipped when
// no database URL is configured. SetupPool migrates the database with the
// embedded goose migrations; ResetData reloads the seed data so each test
// starts from the same people, keys and things.
//
// Seeded keys:
//
//	abcd -> person 1 (Ada), owning things 1 and 2
//	efgh -> person 2 (Grace), owning thing 3
package testdb

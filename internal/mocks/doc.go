// Package mocks provides hand-written test doubles for the store contracts.
// Each mock accepts optional function fields for custom behavior, falls back
// to configurable default values, and records every call for verification.
package mocks

// Package store defines the contract of the data gateway: the only component
// allowed to talk to the database. Every business operation is a single call
// to a stored routine that answers with an HTTP status and a JSON payload,
// which this layer returns without interpreting.
package store

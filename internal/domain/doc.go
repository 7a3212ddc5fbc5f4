// Package domain contains the request-level vocabulary of the gateway: the
// api key format, the resource id bounds and the rejection errors shared by
// the auth gate, the handlers and the response translator. Nothing in this
// package performs I/O.
package domain

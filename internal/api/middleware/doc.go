// Package middleware holds the HTTP middleware of the gateway: request
// tracing, panic recovery, per-request deadlines and the apikey auth gate.
package middleware

// Package api handles incoming HTTP requests: the route table, request
// decoding and the handlers that turn each request into exactly one stored
// routine call. Handlers never build responses of their own; routine results
// and rejections both go through the translator in package shared.
package api

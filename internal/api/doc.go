// Package api implements the HTTP handlers for the catalog REST API:
// stores, items, tags, item-tag associations, and user registration
// and token lifecycle. Handlers decode and validate request payloads,
// call the persistence interfaces, and translate errors into the
// uniform JSON error envelope.
package api

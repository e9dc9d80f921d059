// Package postgres provides PostgreSQL-backed implementations of the
// persistence interfaces defined in the store package. All driver-level
// failures are translated through MapError so callers only ever see the
// store error taxonomy.
package postgres

// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the HTTP layer, so handlers and validators work the same against the
// Postgres store and the in-memory store.
package store

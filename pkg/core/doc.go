// Package core defines the shared domain types for orderdesk and the
// Store interface that every data backend implements.
//
// The types here are plain records: they carry no connection handles and
// no backend identity, so the same values flow through the embedded
// SQLite backend and the remote JSON:API backend unchanged. Business
// logic depends only on core.Store and never on a concrete backend.
package core

// Package store provides SQLite-backed durable storage for braglog entries.
//
// The store is an append-only log: entries are created and read, never
// updated or deleted. Every entry receives an autoincrement id on insert,
// and that id is the insertion marker used to keep same-day entries in the
// order they were added.
//
// # Ordering
//
// The store never imposes an order on filtered reads; the caller's query
// decides. All returns entries in insertion order (ORDER BY id).
//
// # Schema
//
// The schema is managed by golang-migrate from SQL files embedded in the
// binary (migrations/). Dates are stored as YYYY-MM-DD text so that plain
// string comparison in SQL orders them chronologically.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// All failures are reported as *EntryStoreError.
package store

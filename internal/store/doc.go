// Package store persists run history: one row per processing run plus the
// ordered diagnostic events the engine emitted during it.
//
// The store is append-only and written only after a pass has fully
// succeeded, so it never records a run whose output was not produced. It
// uses SQLite in WAL mode; the `runs` command reads it back.
package store

// Package store persists solve history for the CLI in a local SQLite
// database. The engine never touches it; recording is strictly opt-in.
//
// Each solve becomes one row in solves plus one row per rule firing in
// firings, so a recorded trace can be replayed later. Failed solves
// are recorded too, with the error kind and message in place of
// outputs.
package store

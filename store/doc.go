// Package store persists the client session — the raw bearer token and its
// reduced identity projection — behind a single [Store] interface.
//
// Every other component depends on this interface, never on the underlying
// storage primitive. Three backends are provided: [Memory] for tests,
// [File] for single-host CLI usage, and [Redis] for shared terminals.
//
// # Architecture boundaries
//
// This package owns the two fixed storage keys and the identity projection
// shape. It never decodes tokens and never talks to the backend API.
package store

// Package guard turns session state into access decisions for protected
// surfaces.
//
// The decision table is pure derived logic: it never mutates the session and
// never performs I/O. Command-line entry points gate through [Require];
// anything rendering progressively can branch on [Evaluate].
package guard

// Package token decodes the JSON payload embedded in Kultura bearer tokens.
//
// The backend signs and verifies tokens; clients only read the payload to
// learn the subject, role list, and expiry. No signature verification is
// performed here.
//
// # What this package must NOT do
//
//   - Verify token signatures or trust any claim beyond display/gating use.
//   - Perform I/O; decoding is pure.
//   - Import any sibling package (store, gateway) to stay cycle-free.
package token

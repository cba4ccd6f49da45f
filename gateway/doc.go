// Package gateway is the single HTTP boundary between adminkit and the
// Kultura backend.
//
// Every outgoing request passes through one interception pipeline: the
// bearer token is read from the session store and attached, and every
// response is classified into a tagged [*Error] kind. A 401 clears the
// session store and raises the registered unauthorized handler so the whole
// application reacts uniformly without each caller re-implementing the
// check.
//
// # What this package must NOT do
//
//   - Navigate, print, or otherwise touch the UI layer; the unauthorized
//     handler is the application shell's concern.
//   - Decode tokens; it only transports them.
package gateway

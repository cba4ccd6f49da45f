// Package reservations is the client for the backend's booking endpoints.
package reservations

// Package events is the client for the backend's event CRUD endpoints.
//
// The backend exposes two diverging field spellings for the same entities;
// this package normalizes both into one canonical [Event] shape so callers
// never see the divergence.
package events

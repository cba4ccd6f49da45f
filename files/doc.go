// Package files is the client for the backend's image storage endpoints:
// multipart upload, listing, deletion, and URL resolution.
package files

// Package users is the client for the backend's account CRUD endpoints,
// normalizing the two account shapes the backend answers with.
package users

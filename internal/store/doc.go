// Package store defines interfaces for keeping game sessions.
// These interfaces abstract where sessions live from the HTTP layer, so the
// handlers stay independent of the storage mechanism. Sessions are kept in
// memory only; they do not survive a restart.
package store

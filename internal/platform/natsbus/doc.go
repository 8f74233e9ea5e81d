// Package natsbus publishes game notifications to NATS so that remote views
// can follow a session without polling. Each session publishes board
// changes and cheat reveals on their own subjects.
package natsbus

// Package api exposes game sessions over HTTP. It decodes and validates
// requests, forwards them to the session's game and writes JSON views of
// the board back. Face-down cards never reveal their pair in a response
// except through the cheat endpoint.
package api

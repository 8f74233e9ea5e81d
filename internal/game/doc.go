// Package game implements the Concentration game-state engine.
//
// Model is the composition root: it owns the board, the undo history and the
// observer registry, and exposes the player operations (select, undo, reset,
// cheat) together with the queries views use to re-render. Model is
// single-threaded; Locked wraps it with one mutex for multi-threaded hosts.
package game

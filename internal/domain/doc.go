// Package domain contains the core game entities of Concentration: the Card
// and the Board it lives on. It holds no orchestration logic; the game
// package drives every state transition.
package domain

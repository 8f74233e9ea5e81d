// Package testutils provides helpers shared by tests across packages:
// deterministic games, quiet loggers, and HTTP test servers with response
// assertions.
//
// A game dealt with OrderedLayout has pair i at indices i and i+8, so
// selecting i then i+8 always matches and i then i+1 never does:
//
//	m := testutils.MustNewGame(t)
//	_, _ = m.SelectCard(0)
//	_, _ = m.SelectCard(8) // match
package testutils

// Package events provides the observer registry that connects the game model
// to its views.
//
// The model never knows what its observers draw. After every mutating
// operation it notifies the registry, passing itself as the subject and,
// for cheat requests only, a Reveal token. Observers query the subject to
// re-render.
//
// The primary components are:
// - Observer: interface for components that react to model changes
// - Reveal: token distinguishing a cheat reveal from a normal board change
// - Registry: ordered, non-owning list of observers
package events

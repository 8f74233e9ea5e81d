// Package render draws a Concentration board as text. Text is an observer of
// the game model: normal notifications redraw the main surface, cheat
// reveals draw the fully face-up board on a separate surface.
package render

package core

// Color represents a foreground color for a screen cell.
// Values are semantic; the platform layer maps them to ANSI 256-color codes.
type Color uint8

// Palette used by the maze renderer.
const (
	ColorDefault Color = iota
	ColorWall
	ColorVortex
	ColorStar
	ColorFinish
	ColorPlayer
	ColorPlayerDying
	ColorHUD
	ColorOverlay
	ColorFloor
)

package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the runner and its overlays.
const (
	ColorDefault Color = iota
	ColorAmber         // coffee cups, score
	ColorCream         // milk cartons
	ColorFire          // fireballs, Emilía
	ColorPink          // Marta
	ColorBlue          // Super-Baginska
	ColorYellow        // shout bubble, speed readout
	ColorRed           // game over
	ColorGray          // lane markers, hints
	ColorWhite
)

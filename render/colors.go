package render

import "github.com/gdamore/tcell/v2"

// RGB palette
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFieldBorder = tcell.NewRGBColor(90, 90, 110)   // Muted gray-blue
	RgbCenterLine  = tcell.NewRGBColor(55, 57, 75)    // Faint divider
	RgbPaddleLeft  = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbPaddleRight = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbBall        = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbScoreText   = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHaltedText  = tcell.NewRGBColor(255, 0, 0)     // Error Red
)

// PaddleColor returns the color of a side's paddle and score
func PaddleColor(left bool) tcell.Color {
	if left {
		return RgbPaddleLeft
	}
	return RgbPaddleRight
}

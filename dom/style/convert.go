package style

import "image/color"

// Color converts a property value to a color. Only a small palette of
// named colors is recognized; everything else maps to black.
//
// TODO use standard palette
func (p Property) Color() color.Color {
	if p == "default" {
		return nil
	}
	switch p {
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}
	case "green":
		return color.RGBA{0, 0xff, 0, 0xff}
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	case "white":
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return color.Black
}

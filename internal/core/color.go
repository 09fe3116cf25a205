package core

import "image/color"

// Color is an opaque draw attribute understood by every host.
// Hosts translate it to terminal styles or RGBA pixels.
type Color uint8

// Predefined colors for game elements.
const (
	ColorBlack Color = iota
	ColorWhite
	ColorBlue
	ColorRed
	ColorGreen
	ColorYellow
	ColorGray
	ColorOverlay // translucent black laid over what is already drawn
)

var rgba = map[Color]color.RGBA{
	ColorBlack:   {0x00, 0x00, 0x00, 0xff},
	ColorWhite:   {0xff, 0xff, 0xff, 0xff},
	ColorBlue:    {0x00, 0x79, 0xf1, 0xff},
	ColorRed:     {0xe6, 0x29, 0x37, 0xff},
	ColorGreen:   {0x00, 0xe4, 0x30, 0xff},
	ColorYellow:  {0xfd, 0xf9, 0x00, 0xff},
	ColorGray:    {0x82, 0x82, 0x82, 0xff},
	ColorOverlay: {0x00, 0x00, 0x00, 0x80},
}

// RGBA returns the pixel value of the color. Unknown colors map to white.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[ColorWhite]
}

// Translucent reports whether drawing with c blends with the pixels below.
func (c Color) Translucent() bool {
	return c.RGBA().A < 0xff
}

// ParseColor resolves a color name as used in configuration files.
func ParseColor(name string) (Color, bool) {
	switch name {
	case "black":
		return ColorBlack, true
	case "white":
		return ColorWhite, true
	case "blue":
		return ColorBlue, true
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "gray":
		return ColorGray, true
	}
	return ColorWhite, false
}

// String returns the configuration name of the color.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorGray:
		return "gray"
	case ColorOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

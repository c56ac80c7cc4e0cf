package graphics

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green and blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Default widget chrome colors.
const (
	ColorBlack    = Color(0xFF000000)
	ColorWhite    = Color(0xFFFFFFFF)
	ColorGray     = Color(0xFF808080)
	ColorDarkGray = Color(0xFF303030)
)

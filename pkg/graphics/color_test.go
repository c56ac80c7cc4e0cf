package graphics

import "testing"

func TestRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, ColorBlack},
		{"white", 0xFF, 0xFF, 0xFF, ColorWhite},
		{"gray", 0x80, 0x80, 0x80, ColorGray},
		{"channel order", 0x12, 0x34, 0x56, Color(0xFF123456)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGB(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGB(%#x, %#x, %#x) = %#x, want %#x", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

package core

import "testing"

func TestNearestColor(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  float64
		expected Color
	}{
		{"asteroid gray", 0.5, 0.5, 0.5, ColorGray},
		{"pure red", 1.0, 0.0, 0.0, ColorBrightRed},
		{"white", 1.0, 1.0, 1.0, ColorBrightWhite},
		{"thrust orange", 1.0, 0.5, 0.0, ColorOrange},
		{"palette teal", 0.37, 0.69, 0.84, ColorTeal},
		{"palette sky", 0.0, 0.69, 1.0, ColorSky},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NearestColor(tc.r, tc.g, tc.b); got != tc.expected {
				t.Errorf("NearestColor(%.2f, %.2f, %.2f) = %d, expected %d", tc.r, tc.g, tc.b, got, tc.expected)
			}
		})
	}
}

func TestNearestColorNeverDefault(t *testing.T) {
	for _, rgb := range [][3]float64{{0, 0, 0}, {0.2, 0.1, 0.05}, {2, -1, 0.5}} {
		if NearestColor(rgb[0], rgb[1], rgb[2]) == ColorDefault {
			t.Errorf("NearestColor(%v) returned ColorDefault", rgb)
		}
	}
}

package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	c := DarkenColor(color.RGBA{R: 200, G: 100, B: 50, A: 255})
	if c.R != 100 || c.G != 50 || c.B != 25 {
		t.Errorf("Expected channels halved, got %v", c)
	}
	if c.A != 255 {
		t.Errorf("Alpha must be preserved, got %d", c.A)
	}
}

func TestColorLerp(t *testing.T) {
	a := ToRL(color.RGBA{R: 0, G: 0, B: 0, A: 255})
	b := ToRL(color.RGBA{R: 200, G: 100, B: 40, A: 255})

	if got := ColorLerp(a, b, 0); got != a {
		t.Errorf("t=0 must return the first color, got %v", got)
	}
	if got := ColorLerp(a, b, 1); got != b {
		t.Errorf("t=1 must return the second color, got %v", got)
	}
	mid := ColorLerp(a, b, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 20 {
		t.Errorf("Unexpected midpoint %v", mid)
	}
}

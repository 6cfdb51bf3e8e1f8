package hal

import "testing"

func TestRGB565Extremes(t *testing.T) {
	cases := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, tc := range cases {
		r, g, b := rgb888From565(rgb565(tc.r, tc.g, tc.b))
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("round trip (%d,%d,%d) = (%d,%d,%d)", tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

func TestRGB565Quantizes(t *testing.T) {
	// 10,10,20 is the visualizer background; low bits are dropped.
	r, g, b := rgb888From565(rgb565(10, 10, 20))
	if r != 8 || g != 8 || b != 16 {
		t.Fatalf("got (%d,%d,%d), want (8,8,16)", r, g, b)
	}
}

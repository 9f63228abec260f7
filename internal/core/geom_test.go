package core

import "testing"

func TestRectFOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edges",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching vertical edges",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional sliver",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.99, 9.99, 10, 10),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewRectF(-50, -700, 40, 40),
			b:        NewRectF(-30, -680, 100, 20),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	f := NewRectF(1.5, -2, 40, 40)
	if f.Right() != 41.5 {
		t.Errorf("RectF.Right() = %f, expected 41.5", f.Right())
	}
	if f.Bottom() != 38 {
		t.Errorf("RectF.Bottom() = %f, expected 38", f.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}

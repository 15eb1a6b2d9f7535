package core

import "testing"

func TestRectFIntersects(t *testing.T) {
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
			name:     "adjacent horizontal (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
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
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
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

	rf := NewRectF(1.5, 2, 3, 4.5)
	if rf.Right() != 4.5 {
		t.Errorf("RectF.Right() = %f, expected 4.5", rf.Right())
	}
	if rf.Bottom() != 6.5 {
		t.Errorf("RectF.Bottom() = %f, expected 6.5", rf.Bottom())
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
		{5.5, 0.0, 100.0, 5.5},
		{-5.5, 0.0, 100.0, 0.0},
		{150.5, 0.0, 100.0, 100.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestCountdown(t *testing.T) {
	var c Countdown
	if c.Active() {
		t.Fatal("zero Countdown should be expired")
	}
	if c.Tick() {
		t.Error("Tick on expired countdown should not report expiry")
	}

	c.Start(3)
	if !c.Active() || c.Remaining() != 3 {
		t.Fatalf("after Start(3): active=%v remaining=%d", c.Active(), c.Remaining())
	}
	if c.Tick() || c.Tick() {
		t.Error("countdown expired too early")
	}
	if !c.Tick() {
		t.Error("third Tick should report expiry")
	}
	if c.Active() {
		t.Error("countdown should be expired after three ticks")
	}

	c.Start(-4)
	if c.Active() {
		t.Error("negative duration should leave countdown expired")
	}

	c.Start(10)
	c.Stop()
	if c.Active() {
		t.Error("Stop should expire the countdown")
	}
}

type seqRand struct {
	ints []int
	i    int
}

func (s *seqRand) Float64() float64 { return 0 }
func (s *seqRand) Intn(n int) int {
	v := s.ints[s.i%len(s.ints)] % n
	s.i++
	return v
}

func TestRandRange(t *testing.T) {
	r := &seqRand{ints: []int{0, 20}}
	if got := RandRange(r, 20, 40); got != 20 {
		t.Errorf("RandRange low draw = %d, expected 20", got)
	}
	if got := RandRange(r, 20, 40); got != 40 {
		t.Errorf("RandRange high draw = %d, expected 40", got)
	}
	if got := RandRange(r, 7, 7); got != 7 {
		t.Errorf("collapsed RandRange = %d, expected 7", got)
	}
}

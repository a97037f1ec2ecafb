package gamemap

import "testing"

func TestDistance(t *testing.T) {
	cases := []struct {
		x1, y1, x2, y2 int
		want           int
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 3, 0, 3},
		{0, 0, 0, 4, 4},
		{0, 0, 3, 3, 4},
		{5, 5, 1, 2, 5},
	}
	for _, c := range cases {
		if got := Distance(c.x1, c.y1, c.x2, c.y2); got != c.want {
			t.Errorf("Distance(%d,%d,%d,%d)=%d, want %d", c.x1, c.y1, c.x2, c.y2, got, c.want)
		}
	}
}

func TestLOS(t *testing.T) {
	m := openMap(20, 20)
	m.Set(10, 5, MakeWall())

	cases := []struct {
		name           string
		x1, y1, x2, y2 int
		want           bool
	}{
		{"same grid", 3, 3, 3, 3, true},
		{"adjacent", 3, 3, 4, 4, true},
		{"open row", 2, 2, 12, 2, true},
		{"wall in between", 8, 5, 12, 5, false},
		{"wall as endpoint", 8, 5, 10, 5, true},
		{"diagonal open", 1, 1, 6, 6, true},
		{"out of bounds", 1, 1, 25, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.LOS(tc.x1, tc.y1, tc.x2, tc.y2); got != tc.want {
				t.Errorf("LOS(%d,%d,%d,%d)=%v, want %v", tc.x1, tc.y1, tc.x2, tc.y2, got, tc.want)
			}
		})
	}
}

func TestLOSSymmetricOnOpenMap(t *testing.T) {
	m := openMap(15, 15)
	for _, p := range [][4]int{{0, 0, 14, 7}, {3, 11, 9, 2}, {7, 7, 0, 14}} {
		if !m.LOS(p[0], p[1], p[2], p[3]) || !m.LOS(p[2], p[3], p[0], p[1]) {
			t.Errorf("expected LOS both ways between (%d,%d) and (%d,%d)", p[0], p[1], p[2], p[3])
		}
	}
}

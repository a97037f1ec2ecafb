package gamemap

// Distance is the roguelike grid distance: the longer axis plus half the
// shorter one.
func Distance(x1, y1, x2, y2 int) int {
	dx, dy := abs(x2-x1), abs(y2-y1)
	if dy > dx {
		return dy + dx/2
	}
	return dx + dy/2
}

// LOS reports whether (x2, y2) can be seen from (x1, y1). Every grid strictly
// between the two endpoints must be transparent; the endpoints themselves
// may be opaque.
func (m *GameMap) LOS(x1, y1, x2, y2 int) bool {
	if !m.InBounds(x1, y1) || !m.InBounds(x2, y2) {
		return false
	}
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := sign(x2-x1), sign(y2-y1)
	err := dx + dy
	x, y := x1, y1
	for {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		if x == x2 && y == y2 {
			return true
		}
		if !m.IsTransparent(x, y) {
			return false
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

package gamemap

// octants maps a (dx, dy) sweep pair to a world offset:
// x = cx + dx*xx + dy*xy, y = cy + dx*yx + dy*yy.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// UpdateFOV resets visibility and runs recursive shadowcasting from (cx, cy).
func (m *GameMap) UpdateFOV(cx, cy, radius int) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.At(x, y).Visible = false
		}
	}
	if !m.InBounds(cx, cy) {
		return
	}
	origin := m.At(cx, cy)
	origin.Visible = true
	origin.Explored = true

	for _, o := range octants {
		m.castLight(cx, cy, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3])
	}
}

// castLight lights one octant. Row j sweeps dx from -j to 0 with dy = -j
// fixed; cell edges have slopes (dx-0.5)/(dy+0.5) and (dx+0.5)/(dy-0.5).
func (m *GameMap) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Light this cell if within the radius circle.
			if float64(dx*dx+dy*dy) < radiusSq && m.InBounds(wx, wy) {
				t := m.At(wx, wy)
				t.Visible = true
				t.Explored = true
			}

			opaque := !m.InBounds(wx, wy) || !m.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					// Still inside a wall run.
					newStart = rSlope
				} else {
					// Wall ended; resume from the shadow edge.
					blocked = false
					start = newStart
				}
			} else {
				if opaque && j < radius {
					// New wall; scan the open part beyond it.
					blocked = true
					m.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

package bmask

// Scale produces a w×h plane by Bresenham-style nearest-neighbor resampling
// of m: each set source bit is replicated across the run of destination
// rows/columns the DDA assigns to it. w < 1 or h < 1 returns a fresh 1×1
// all-zero plane rather than an error, matching the original C library's
// degenerate case.
func Scale(m *Plane, w, h int) (*Plane, error) {
	if w < 1 || h < 1 {
		return Create(1, 1)
	}
	nm, err := Create(w, h)
	if err != nil {
		return nil, err
	}
	ny, dny := 0, 0
	for y, dy := 0, h; y < m.h; y, dy = y+1, dy+h {
		for dny < dy {
			nx, dnx := 0, 0
			for x, dx := 0, w; x < m.w; x, dx = x+1, dx+w {
				if m.GetBit(x, y) != 0 {
					for dnx < dx {
						nm.SetBit(nx, ny)
						nx++
						dnx += m.w
					}
				} else {
					for dnx < dx {
						nx++
						dnx += m.w
					}
				}
			}
			ny++
			dny += m.h
		}
	}
	return nm, nil
}

// Convolve computes the morphological dilation of a by b: for
// each set bit (bx,by) in b, draws a into o at offset (xoffset+b.w-1-bx,
// yoffset+b.h-1-by). o is not cleared first; callers wanting a fresh result
// must clear it themselves.
func Convolve(a, b, o *Plane, xoffset, yoffset int) {
	xoffset += b.w - 1
	yoffset += b.h - 1
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.GetBit(x, y) != 0 {
				Draw(o, a, xoffset-x, yoffset-y)
			}
		}
	}
}

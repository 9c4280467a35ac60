package bmask

import "strings"

// String renders m as a w×h grid of '#' (set) and '.' (clear), one row per
// line, for debugging and examples.
func (m *Plane) String() string {
	var b strings.Builder
	b.Grow((m.w + 1) * m.h)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.GetBit(x, y) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

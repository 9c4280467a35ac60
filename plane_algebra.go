package bmask

import "math/bits"

// vbounds computes the vertical intersection of two ranges of height hFirst
// and hSecond, the second placed at offset relative to the first (spec
// §4.2 "Vertical clipping"). It returns the starting row in each range and
// the number of rows to walk. Calling vbounds(b.h, a.h, -yoffset) instead of
// vbounds(a.h, b.h, yoffset) gives the mirrored bounds needed by the
// negative-xoffset branch of Draw/Erase/OverlapMask, since those ops cannot
// swap their buffers the way Overlap/OverlapArea/OverlapPos do.
func vbounds(hFirst, hSecond, offset int) (firstStart, secondStart, length int) {
	if offset >= 0 {
		firstStart = offset
		length = min(hSecond, hFirst-offset)
		secondStart = 0
	} else {
		firstStart = 0
		length = min(hSecond+offset, hFirst)
		secondStart = -offset
	}
	if length < 0 {
		length = 0
	}
	return
}

// earlyOut reports whether b placed at (xoffset,yoffset) in a's frame can
// have no intersection at all.
func earlyOut(a, b *Plane, xoffset, yoffset int) bool {
	return xoffset >= a.w || yoffset >= a.h || xoffset+b.w <= 0 || yoffset+b.h <= 0
}

// stripeGeometry holds the per-stripe walk parameters for a nonnegative
// xoffset.
type stripeGeometry struct {
	xbase, shift, rshift int
	bstripes             int
	loopCount            int // number of dest-stripe offsets i in [0,loopCount) to visit
}

// positiveGeometry computes the walk for xoffset >= 0, writing into
// destination stripes xbase+i (0 <= i < loopCount), where the source
// contribution at offset i is (bStripe(i) << shift) | (bStripe(i-1) >>
// rshift). Go defines shifts by >= the operand width as zero, so shift == 0
// (rshift == 64) collapses cleanly into the aligned case without a separate
// branch, unlike the C original, whose pointer-arithmetic version needs a
// dedicated aligned-copy branch since shifting by the full word width is
// undefined there; Go's shift semantics make that special case redundant.
func positiveGeometry(destStripes int, xoffset, bw int) stripeGeometry {
	xbase := xoffset >> wordShift
	shift := xoffset & wordMask
	bstripes := stripesFor(bw)
	upperI := destStripes - 1 - xbase
	loopCount := min(bstripes, upperI) + 1
	if loopCount < 0 {
		loopCount = 0
	}
	return stripeGeometry{xbase: xbase, shift: shift, rshift: wordBits - shift, bstripes: bstripes, loopCount: loopCount}
}

// combinedWord returns the contribution of src's stripes (i-1, i) to dest
// stripe xbase+i, at src row srcRow. Out-of-range stripe reads are treated
// as zero.
func (g stripeGeometry) combinedWord(src *Plane, i, srcRow int) uint64 {
	var low, high uint64
	if i >= 0 && i < g.bstripes {
		low = src.bits[i*src.h+srcRow]
	}
	if i-1 >= 0 && i-1 < g.bstripes {
		high = src.bits[(i-1)*src.h+srcRow]
	}
	return (low << uint(g.shift)) | (high >> uint(g.rshift))
}

// mirroredGeometry computes the walk for the "cannot swap" ops (Draw,
// Erase, OverlapMask) when the original xoffset is negative: xa = -xoffset,
// and dest stripe i (0 <= i < loopCount, dest = a, starting at stripe 0)
// combines src stripes xbase+i (>> shift) and xbase+i+1 (<< rshift).
func mirroredGeometry(destStripes int, xa, srcW int) stripeGeometry {
	xbase := xa >> wordShift
	shift := xa & wordMask
	bstripes := stripesFor(srcW)
	loopCount := min(destStripes, bstripes-xbase)
	if loopCount < 0 {
		loopCount = 0
	}
	return stripeGeometry{xbase: xbase, shift: shift, rshift: wordBits - shift, bstripes: bstripes, loopCount: loopCount}
}

func (g stripeGeometry) mirroredWord(src *Plane, i, srcRow int) uint64 {
	var low, high uint64
	lo := g.xbase + i
	hi := g.xbase + i + 1
	if lo >= 0 && lo < g.bstripes {
		low = src.bits[lo*src.h+srcRow]
	}
	if hi >= 0 && hi < g.bstripes {
		high = src.bits[hi*src.h+srcRow]
	}
	return (low >> uint(g.shift)) | (high << uint(g.rshift))
}

// Overlap reports whether a and b, with b placed at (xoffset,yoffset) in
// a's frame, share any set bit.
func Overlap(a, b *Plane, xoffset, yoffset int) bool {
	if earlyOut(a, b, xoffset, yoffset) {
		return false
	}
	if xoffset < 0 {
		return Overlap(b, a, -xoffset, -yoffset)
	}
	aStart, bStart, length := vbounds(a.h, b.h, yoffset)
	g := positiveGeometry(a.stripes, xoffset, b.w)
	for i := 0; i < g.loopCount; i++ {
		aStripe := g.xbase + i
		for y := 0; y < length; y++ {
			if a.bits[aStripe*a.h+aStart+y]&g.combinedWord(b, i, bStart+y) != 0 {
				return true
			}
		}
	}
	return false
}

// OverlapArea returns the number of coordinates where a and b, with b
// placed at (xoffset,yoffset) in a's frame, both have a set bit.
func OverlapArea(a, b *Plane, xoffset, yoffset int) int {
	if earlyOut(a, b, xoffset, yoffset) {
		return 0
	}
	if xoffset < 0 {
		return OverlapArea(b, a, -xoffset, -yoffset)
	}
	aStart, bStart, length := vbounds(a.h, b.h, yoffset)
	g := positiveGeometry(a.stripes, xoffset, b.w)
	count := 0
	for i := 0; i < g.loopCount; i++ {
		aStripe := g.xbase + i
		for y := 0; y < length; y++ {
			count += bits.OnesCount64(a.bits[aStripe*a.h+aStart+y] & g.combinedWord(b, i, bStart+y))
		}
	}
	return count
}

// OverlapPos finds the first coordinate, in a's frame, where a and b (b
// placed at (xoffset,yoffset)) both have a set bit. ok is false if there is
// no overlap. "First" is in stripe-walk order: 64-bit column stripes left to
// right, rows top to bottom within a stripe, lowest bit within a word. The
// stripes walked are a's when xoffset >= 0 and b's when xoffset < 0.
func OverlapPos(a, b *Plane, xoffset, yoffset int) (x, y int, ok bool) {
	if earlyOut(a, b, xoffset, yoffset) {
		return 0, 0, false
	}
	if xoffset < 0 {
		if px, py, found := OverlapPos(b, a, -xoffset, -yoffset); found {
			return px + xoffset, py + yoffset, true
		}
		return 0, 0, false
	}
	aStart, bStart, length := vbounds(a.h, b.h, yoffset)
	g := positiveGeometry(a.stripes, xoffset, b.w)
	for i := 0; i < g.loopCount; i++ {
		aStripe := g.xbase + i
		for row := 0; row < length; row++ {
			word := a.bits[aStripe*a.h+aStart+row] & g.combinedWord(b, i, bStart+row)
			if word != 0 {
				return aStripe*wordBits + firstSetBit(word), aStart + row, true
			}
		}
	}
	return 0, 0, false
}

// OverlapMask writes a & b̃ into c, where b̃ is b placed at
// (xoffset,yoffset) in a's frame and c is aligned with a. c must have the
// same dimensions as a and must not alias a.
func OverlapMask(a, b, c *Plane, xoffset, yoffset int) {
	if a.w != c.w || a.h != c.h {
		panic((&ValidationError{Field: "c", Message: "must match a's dimensions"}).WithContext("OverlapMask"))
	}
	c.Clear()
	if earlyOut(a, b, xoffset, yoffset) {
		return
	}
	if xoffset >= 0 {
		aStart, bStart, length := vbounds(a.h, b.h, yoffset)
		g := positiveGeometry(a.stripes, xoffset, b.w)
		for i := 0; i < g.loopCount; i++ {
			aStripe := g.xbase + i
			for row := 0; row < length; row++ {
				c.bits[aStripe*c.h+aStart+row] = a.bits[aStripe*a.h+aStart+row] & g.combinedWord(b, i, bStart+row)
			}
		}
	} else {
		xa := -xoffset
		bStart, aStart, length := vbounds(b.h, a.h, -yoffset)
		g := mirroredGeometry(a.stripes, xa, b.w)
		for i := 0; i < g.loopCount; i++ {
			for row := 0; row < length; row++ {
				c.bits[i*c.h+aStart+row] = a.bits[i*a.h+aStart+row] & g.mirroredWord(b, i, bStart+row)
			}
		}
	}
	maskLastStripe(c)
}

// Draw sets a |= b̃, where b̃ is b placed at (xoffset,yoffset) in a's
// frame.
func Draw(a, b *Plane, xoffset, yoffset int) {
	if earlyOut(a, b, xoffset, yoffset) {
		return
	}
	if xoffset >= 0 {
		aStart, bStart, length := vbounds(a.h, b.h, yoffset)
		g := positiveGeometry(a.stripes, xoffset, b.w)
		for i := 0; i < g.loopCount; i++ {
			aStripe := g.xbase + i
			for row := 0; row < length; row++ {
				a.bits[aStripe*a.h+aStart+row] |= g.combinedWord(b, i, bStart+row)
			}
		}
	} else {
		xa := -xoffset
		bStart, aStart, length := vbounds(b.h, a.h, -yoffset)
		g := mirroredGeometry(a.stripes, xa, b.w)
		for i := 0; i < g.loopCount; i++ {
			for row := 0; row < length; row++ {
				a.bits[i*a.h+aStart+row] |= g.mirroredWord(b, i, bStart+row)
			}
		}
	}
	maskLastStripe(a)
}

// Erase sets a &= ~b̃, where b̃ is b placed at (xoffset,yoffset) in a's
// frame. Every branch uses AND-NOT; the original C library's negative-x
// zig-zag tail has a copy-paste bug (an OR where every sibling branch is
// AND-NOT) which this port does not reproduce — see plane_erase_test.go.
func Erase(a, b *Plane, xoffset, yoffset int) {
	if earlyOut(a, b, xoffset, yoffset) {
		return
	}
	if xoffset >= 0 {
		aStart, bStart, length := vbounds(a.h, b.h, yoffset)
		g := positiveGeometry(a.stripes, xoffset, b.w)
		for i := 0; i < g.loopCount; i++ {
			aStripe := g.xbase + i
			for row := 0; row < length; row++ {
				a.bits[aStripe*a.h+aStart+row] &^= g.combinedWord(b, i, bStart+row)
			}
		}
	} else {
		xa := -xoffset
		bStart, aStart, length := vbounds(b.h, a.h, -yoffset)
		g := mirroredGeometry(a.stripes, xa, b.w)
		for i := 0; i < g.loopCount; i++ {
			for row := 0; row < length; row++ {
				a.bits[i*a.h+aStart+row] &^= g.mirroredWord(b, i, bStart+row)
			}
		}
	}
	// AND-NOT can only clear bits, so a's padding (already 0) stays 0; no
	// re-mask needed, unlike Draw.
}

// maskLastStripe re-applies the tail mask to m's right-most stripe,
// restoring the padding invariant after an OR-based write that may have
// reached bits beyond m.w.
func maskLastStripe(m *Plane) {
	if m.w == 0 || m.h == 0 {
		return
	}
	last := tailMask(m.w)
	base := (m.stripes - 1) * m.h
	for y := 0; y < m.h; y++ {
		m.bits[base+y] &= last
	}
}

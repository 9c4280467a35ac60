package bmask

import "github.com/blitkit/bmask/internal/cclabel"

// CCScratch bundles the backing storage a connected-component pass needs
// (label image, union-find array, per-label counts), letting repeated calls
// over same-sized planes reuse their arrays instead of allocating fresh ones
// every call. The zero value is ready to use; pass a *CCScratch to the
// *Scratch variants of BoundingRects/ConnectedComponents/LargestComponent to
// opt in, e.g. when scanning many same-sized frames in a game loop.
type CCScratch struct {
	raw cclabel.Scratch
}

// labeling holds the scratch state of a SAUF two-pass 8-connected labeling
// pass over a Plane. labels is row-major w*h; label 0 means
// background. ufind[k] == k for a root; union is by smaller root, with
// one-step path compression applied during flatten.
type labeling struct {
	w, h   int
	labels []int
	ufind  []int // index 0 is the unused background sentinel
	counts []int // per-label pixel count, indexed like ufind
}

func labelComponents(m *Plane, scratch *CCScratch) (*labeling, error) {
	total, ok := mulOverflow(m.w, m.h)
	if !ok {
		return nil, ErrAlloc
	}
	if scratch == nil {
		scratch = &CCScratch{}
	}
	scratch.raw.Reset(total)
	l := &labeling{
		w:      m.w,
		h:      m.h,
		labels: scratch.raw.Labels,
		ufind:  scratch.raw.Ufind,
		counts: scratch.raw.Counts,
	}
	neighbor := func(x, y int) int {
		if x < 0 || x >= m.w || y < 0 || y >= m.h {
			return 0
		}
		return l.labels[y*m.w+x]
	}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.GetBit(x, y) == 0 {
				continue
			}
			b := neighbor(x, y-1)
			a := neighbor(x-1, y-1)
			c := neighbor(x+1, y-1)
			d := neighbor(x-1, y)
			var label int
			switch {
			case b != 0:
				label = l.find(b)
			case c != 0:
				label = l.find(c)
				if a != 0 {
					label = l.union(label, l.find(a))
				} else if d != 0 {
					label = l.union(label, l.find(d))
				}
			case a != 0:
				label = l.find(a)
			case d != 0:
				label = l.find(d)
			default:
				label = len(l.ufind)
				l.ufind = append(l.ufind, label)
				l.counts = append(l.counts, 0)
			}
			l.labels[y*m.w+x] = label
			l.counts[label]++
		}
	}
	scratch.raw.Ufind = l.ufind
	scratch.raw.Counts = l.counts
	return l, nil
}

// find returns the root of x's tree, compressing the path walked.
func (l *labeling) find(x int) int {
	root := x
	for l.ufind[root] != root {
		root = l.ufind[root]
	}
	for l.ufind[x] != root {
		next := l.ufind[x]
		l.ufind[x] = root
		x = next
	}
	return root
}

// union merges the trees of p and q, the smaller root becoming the parent,
// and returns the merged root.
func (l *labeling) union(p, q int) int {
	rp, rq := l.find(p), l.find(q)
	if rp == rq {
		return rp
	}
	if rp < rq {
		l.ufind[rq] = rp
		return rp
	}
	l.ufind[rp] = rq
	return rq
}

// flatten resolves every label to its true root in a single ascending pass
// (valid because union always makes the larger label point to the smaller,
// so ufind[x] for x > 1 already references an index visited earlier),
// assigns compact labels 1..n to surviving roots (root pixel count >= min),
// and returns the per-original-label -> compact-label mapping plus the
// component count.
func (l *labeling) flatten(min int) (compact []int, n int) {
	k := len(l.ufind) - 1
	for x := 1; x <= k; x++ {
		if l.ufind[x] != x {
			l.ufind[x] = l.ufind[l.ufind[x]]
		}
	}
	compact = make([]int, k+1)
	next := 1
	for x := 1; x <= k; x++ {
		if l.ufind[x] == x {
			if l.counts[x] < min {
				compact[x] = 0
			} else {
				compact[x] = next
				next++
			}
		}
	}
	for x := 1; x <= k; x++ {
		compact[x] = compact[l.ufind[x]]
	}
	n = next - 1
	return
}

// propagateCounts folds each label's own pixel count up into its root's
// total, reusing flatten's ascending-scan trick. Afterwards l.counts holds
// each component's total at its root label; non-root entries are stale.
func (l *labeling) propagateCounts() {
	k := len(l.ufind) - 1
	for x := 1; x <= k; x++ {
		if l.ufind[x] != x {
			l.ufind[x] = l.ufind[l.ufind[x]]
			l.counts[l.ufind[x]] += l.counts[x]
		}
	}
}

// BoundingRects returns the axis-aligned bounding rectangle of each
// 8-connected component of m, in ascending label order.
func BoundingRects(m *Plane) ([]Rect, error) {
	return BoundingRectsScratch(m, nil)
}

// BoundingRectsScratch is BoundingRects, reusing scratch's backing arrays
// across calls instead of allocating fresh ones. scratch may be nil, which
// behaves exactly like BoundingRects.
func BoundingRectsScratch(m *Plane, scratch *CCScratch) ([]Rect, error) {
	l, err := labelComponents(m, scratch)
	if err != nil {
		return nil, err
	}
	compact, n := l.flatten(1)
	if n == 0 {
		return nil, nil
	}
	rects := make([]Rect, n)
	started := make([]bool, n)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			label := l.labels[y*m.w+x]
			if label == 0 {
				continue
			}
			idx := compact[label] - 1
			if !started[idx] {
				rects[idx] = Rect{X: x, Y: y, W: 1, H: 1}
				started[idx] = true
				continue
			}
			rects[idx] = unionRect(rects[idx], x, y)
		}
	}
	return rects, nil
}

func unionRect(r Rect, x, y int) Rect {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	if x < x0 {
		x0 = x
	}
	if y < y0 {
		y0 = y
	}
	if x+1 > x1 {
		x1 = x + 1
	}
	if y+1 > y1 {
		y1 = y + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ConnectedComponents returns one bit-plane per 8-connected component of m
// with at least min set bits, in ascending label order.
func ConnectedComponents(m *Plane, min int) ([]*Plane, error) {
	return ConnectedComponentsScratch(m, min, nil)
}

// ConnectedComponentsScratch is ConnectedComponents, reusing scratch's
// backing arrays across calls. scratch may be nil, which behaves exactly
// like ConnectedComponents.
func ConnectedComponentsScratch(m *Plane, min int, scratch *CCScratch) ([]*Plane, error) {
	l, err := labelComponents(m, scratch)
	if err != nil {
		return nil, err
	}
	l.propagateCounts()
	compact, n := l.flatten(min)
	if n == 0 {
		return nil, nil
	}
	out := make([]*Plane, n)
	for i := range out {
		p, err := Create(m.w, m.h)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			label := l.labels[y*m.w+x]
			if label == 0 {
				continue
			}
			if idx := compact[label]; idx != 0 {
				out[idx-1].SetBit(x, y)
			}
		}
	}
	return out, nil
}

// LargestComponent returns the bit-plane of a single 8-connected component
// of m. If (sx,sy) lies inside m the returned component is the one
// containing (sx,sy) (empty plane if that pixel is background); otherwise
// it is the component with the greatest popcount, ties broken by first
// encountered in row-major scan.
func LargestComponent(m *Plane, sx, sy int) (*Plane, error) {
	return LargestComponentScratch(m, sx, sy, nil)
}

// LargestComponentScratch is LargestComponent, reusing scratch's backing
// arrays across calls. scratch may be nil, which behaves exactly like
// LargestComponent.
func LargestComponentScratch(m *Plane, sx, sy int, scratch *CCScratch) (*Plane, error) {
	l, err := labelComponents(m, scratch)
	if err != nil {
		return nil, err
	}
	l.propagateCounts()

	var target int
	if sx >= 0 && sy >= 0 && sx < m.w && sy < m.h {
		label := l.labels[sy*m.w+sx]
		if label != 0 {
			target = l.find(label)
		}
	} else {
		best := -1
		for y := 0; y < m.h; y++ {
			for x := 0; x < m.w; x++ {
				label := l.labels[y*m.w+x]
				if label == 0 {
					continue
				}
				root := l.find(label)
				if l.counts[root] > best {
					best = l.counts[root]
					target = root
				}
			}
		}
	}

	out, err := Create(m.w, m.h)
	if err != nil {
		return nil, err
	}
	if target == 0 {
		return out, nil
	}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			label := l.labels[y*m.w+x]
			if label != 0 && l.find(label) == target {
				out.SetBit(x, y)
			}
		}
	}
	return out, nil
}

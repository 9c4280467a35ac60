package bmask_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/blitkit/bmask"
)

// TestConnectedComponentsWorkedExample reproduces the literal example from
// the bit-plane algebra notes: three 8-connected components with popcounts
// {5,1,1} and bounding rects {(1,0,3,3),(1,4,1,1),(3,4,1,1)}.
func TestConnectedComponentsWorkedExample(t *testing.T) {
	m, err := bmask.Create(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{2, 0}, {1, 1}, {2, 1}, {3, 1}, {2, 2}, {1, 4}, {3, 4}} {
		m.SetBit(p[0], p[1])
	}

	rects, err := bmask.BoundingRects(m)
	if err != nil {
		t.Fatal(err)
	}
	wantRects := []bmask.Rect{{X: 1, Y: 0, W: 3, H: 3}, {X: 1, Y: 4, W: 1, H: 1}, {X: 3, Y: 4, W: 1, H: 1}}
	if len(rects) != len(wantRects) {
		t.Fatalf("got %d rects, want %d: %+v", len(rects), len(wantRects), rects)
	}
	for i, r := range rects {
		if r != wantRects[i] {
			t.Fatalf("rect %d = %+v, want %+v", i, r, wantRects[i])
		}
	}

	comps, err := bmask.ConnectedComponents(m, 1)
	if err != nil {
		t.Fatal(err)
	}
	gotCounts := make([]int, len(comps))
	for i, c := range comps {
		gotCounts[i] = c.Count()
	}
	wantCounts := []int{5, 1, 1}
	if len(gotCounts) != len(wantCounts) {
		t.Fatalf("got %d components, want %d", len(gotCounts), len(wantCounts))
	}
	for i := range wantCounts {
		if gotCounts[i] != wantCounts[i] {
			t.Fatalf("component %d popcount = %d, want %d", i, gotCounts[i], wantCounts[i])
		}
	}

	largest, err := bmask.LargestComponent(m, -1, -1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := largest.Count(), 5; got != want {
		t.Fatalf("largest component popcount = %d, want %d", got, want)
	}
}

func TestConnectedComponentsMinFilter(t *testing.T) {
	m, _ := bmask.Create(5, 5)
	for _, p := range [][2]int{{2, 0}, {1, 1}, {2, 1}, {3, 1}, {2, 2}, {1, 4}, {3, 4}} {
		m.SetBit(p[0], p[1])
	}
	comps, err := bmask.ConnectedComponents(m, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(comps) != 1 {
		t.Fatalf("got %d components with min=2, want 1", len(comps))
	}
	if got := comps[0].Count(); got != 5 {
		t.Fatalf("surviving component popcount = %d, want 5", got)
	}
}

func TestLargestComponentSeeded(t *testing.T) {
	m, _ := bmask.Create(5, 5)
	for _, p := range [][2]int{{2, 0}, {1, 1}, {2, 1}, {3, 1}, {2, 2}, {1, 4}, {3, 4}} {
		m.SetBit(p[0], p[1])
	}
	c, err := bmask.LargestComponent(m, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Count(); got != 1 {
		t.Fatalf("seeded component popcount = %d, want 1", got)
	}
	if c.GetBit(3, 4) != 1 {
		t.Fatal("seeded component does not contain the seed pixel")
	}

	empty, err := bmask.LargestComponent(m, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := empty.Count(); got != 0 {
		t.Fatalf("seeded at background pixel popcount = %d, want 0", got)
	}
}

func TestCCScratchReuseMatchesFreshAllocation(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	scratch := &bmask.CCScratch{}
	for trial := 0; trial < 10; trial++ {
		w, h := 1+rng.Intn(40), 1+rng.Intn(15)
		m := randomPlane(rng, w, h, 0.3)

		want, err := bmask.ConnectedComponents(m, 1)
		if err != nil {
			t.Fatal(err)
		}
		got, err := bmask.ConnectedComponentsScratch(m, 1, scratch)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(want) {
			t.Fatalf("w=%d h=%d: scratch run got %d components, want %d", w, h, len(got), len(want))
		}
		for i := range want {
			if got[i].String() != want[i].String() {
				t.Fatalf("w=%d h=%d: component %d differs between scratch and fresh run", w, h, i)
			}
		}
	}
}

// refComponents is a brute-force 8-connected flood fill used as an oracle
// for popcount and rect-count (not label ordering, which is scan-order
// dependent and already pinned by the worked example above).
func refComponents(m *bmask.Plane) (counts []int, rects []bmask.Rect) {
	w, h := m.Width(), m.Height()
	seen := make([]bool, w*h)
	dirs := [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	for y0 := 0; y0 < h; y0++ {
		for x0 := 0; x0 < w; x0++ {
			if m.GetBit(x0, y0) == 0 || seen[y0*w+x0] {
				continue
			}
			stack := [][2]int{{x0, y0}}
			seen[y0*w+x0] = true
			count := 0
			r := bmask.Rect{X: x0, Y: y0, W: 1, H: 1}
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				count++
				x1, y1 := r.X+r.W, r.Y+r.H
				if p[0] < r.X {
					r.X = p[0]
				}
				if p[1] < r.Y {
					r.Y = p[1]
				}
				if p[0]+1 > x1 {
					x1 = p[0] + 1
				}
				if p[1]+1 > y1 {
					y1 = p[1] + 1
				}
				r.W, r.H = x1-r.X, y1-r.Y
				for _, d := range dirs {
					nx, ny := p[0]+d[0], p[1]+d[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if m.GetBit(nx, ny) != 0 && !seen[ny*w+nx] {
						seen[ny*w+nx] = true
						stack = append(stack, [2]int{nx, ny})
					}
				}
			}
			counts = append(counts, count)
			rects = append(rects, r)
		}
	}
	return
}

func TestConnectedComponentsAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 15; trial++ {
		w, h := 1+rng.Intn(70), 1+rng.Intn(20)
		m := randomPlane(rng, w, h, 0.25)

		wantCounts, wantRects := refComponents(m)
		sort.Ints(wantCounts)

		comps, err := bmask.ConnectedComponents(m, 1)
		if err != nil {
			t.Fatal(err)
		}
		gotCounts := make([]int, len(comps))
		for i, c := range comps {
			gotCounts[i] = c.Count()
		}
		sort.Ints(gotCounts)
		if len(gotCounts) != len(wantCounts) {
			t.Fatalf("w=%d h=%d: got %d components, want %d", w, h, len(gotCounts), len(wantCounts))
		}
		for i := range wantCounts {
			if gotCounts[i] != wantCounts[i] {
				t.Fatalf("w=%d h=%d: sorted popcounts %v, want %v", w, h, gotCounts, wantCounts)
			}
		}

		rects, err := bmask.BoundingRects(m)
		if err != nil {
			t.Fatal(err)
		}
		if len(rects) != len(wantRects) {
			t.Fatalf("w=%d h=%d: got %d rects, want %d", w, h, len(rects), len(wantRects))
		}
	}
}

// Package cclabel holds the reusable backing storage for connected-component
// labeling passes, split out from bmask so the scratch-reuse concern has a
// name of its own, separate from the exported plane type's low-level word
// storage.
package cclabel

// Scratch bundles the label image, union-find array, and per-label count
// array a single connected-component pass needs. Reset grows the backing
// slices only when the requested size exceeds current capacity, so repeated
// calls over same-sized (or shrinking) planes reuse the same memory instead
// of allocating fresh slices every time.
type Scratch struct {
	Labels []int
	Ufind  []int
	Counts []int
}

// Reset prepares the scratch for an image with n pixels: Labels is sized to
// n and zeroed; Ufind and Counts are truncated to their single background
// sentinel entry, ready for labels to be appended during the pass.
func (s *Scratch) Reset(n int) {
	if cap(s.Labels) < n {
		s.Labels = make([]int, n)
	} else {
		s.Labels = s.Labels[:n]
		for i := range s.Labels {
			s.Labels[i] = 0
		}
	}
	if cap(s.Ufind) == 0 {
		s.Ufind = make([]int, 1)
	} else {
		s.Ufind = s.Ufind[:1]
		s.Ufind[0] = 0
	}
	if cap(s.Counts) == 0 {
		s.Counts = make([]int, 1)
	} else {
		s.Counts = s.Counts[:1]
		s.Counts[0] = 0
	}
}

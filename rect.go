package bmask

// Rect is an axis-aligned integer rectangle with W,H >= 1, satisfying the
// rectangle contract consumed by BoundingRects.
type Rect struct {
	X, Y, W, H int
}

// Package sdlsurface adapts an *sdl.Surface from github.com/veandco/go-sdl2
// to the bmask.Surface contract, so bit-plane and raster operations can
// read and write its pixels in place without a copy.
package sdlsurface

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/blitkit/bmask"
)

// Surface wraps an *sdl.Surface. The wrapped surface must be locked by the
// caller (sdl.Surface.Lock) for the duration of any operation that reads or
// writes Pixels(), per SDL's own surface-locking contract.
type Surface struct {
	s *sdl.Surface
}

// Wrap returns a bmask.Surface view over s.
func Wrap(s *sdl.Surface) *Surface {
	return &Surface{s: s}
}

func (w *Surface) Width() int  { return int(w.s.W) }
func (w *Surface) Height() int { return int(w.s.H) }
func (w *Surface) Pitch() int  { return int(w.s.Pitch) }

func (w *Surface) BytesPerPixel() int {
	return int(w.s.Format.BytesPerPixel)
}

// Pixels returns the surface's raw pixel buffer; mutations are visible to
// SDL immediately, matching bmask.Surface's caller-owned-storage contract.
func (w *Surface) Pixels() []byte {
	return w.s.Pixels()
}

// Format derives a bmask.PixelFormat from the wrapped surface's own
// already-populated SDL_PixelFormat fields.
func (w *Surface) Format() bmask.PixelFormat {
	f := w.s.Format
	return bmask.PixelFormat{
		Rmask: f.Rmask, Gmask: f.Gmask, Bmask: f.Bmask, Amask: f.Amask,
		Rshift: f.Rshift, Gshift: f.Gshift, Bshift: f.Bshift, Ashift: f.Ashift,
		Rloss: f.Rloss, Gloss: f.Gloss, Bloss: f.Bloss, Aloss: f.Aloss,
	}
}

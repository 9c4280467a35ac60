// Package ebitensurface adapts an *ebiten.Image from
// github.com/hajimehoshi/ebiten/v2 to the bmask.Surface contract.
//
// Unlike sdlsurface, this is NOT a zero-copy view: ebiten.Image never
// exposes a mutable backing slice (it may live on the GPU), so Pixels()
// returns a snapshot taken via ReadPixels, and Flush must be called to push
// edits back with WritePixels. Surface always reports RGBA8888, the only
// format ebiten.Image uses.
package ebitensurface

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/blitkit/bmask"
)

var format = bmask.PixelFormat{
	Rmask: 0x000000ff, Gmask: 0x0000ff00, Bmask: 0x00ff0000, Amask: 0xff000000,
	Rshift: 0, Gshift: 8, Bshift: 16, Ashift: 24,
}

// Surface wraps an *ebiten.Image. Call Flush after mutating Pixels() to
// write the snapshot back to the image.
type Surface struct {
	img    *ebiten.Image
	pixels []byte
}

// Wrap returns a bmask.Surface snapshot of img. The snapshot is read once,
// via ebiten.Image.ReadPixels; call Flush to commit edits back to img.
func Wrap(img *ebiten.Image) *Surface {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	pixels := make([]byte, w*h*4)
	img.ReadPixels(pixels)
	return &Surface{img: img, pixels: pixels}
}

func (w *Surface) Width() int         { return w.img.Bounds().Dx() }
func (w *Surface) Height() int        { return w.img.Bounds().Dy() }
func (w *Surface) Pitch() int         { return w.img.Bounds().Dx() * 4 }
func (w *Surface) BytesPerPixel() int { return 4 }
func (w *Surface) Pixels() []byte     { return w.pixels }
func (w *Surface) Format() bmask.PixelFormat { return format }

// Flush writes the (possibly mutated) pixel snapshot back to the wrapped
// ebiten.Image.
func (w *Surface) Flush() {
	w.img.WritePixels(w.pixels)
}

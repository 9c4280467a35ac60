package raster_test

import "github.com/blitkit/bmask"

// fakeSurface is a minimal in-memory bmask.Surface for exercising raster
// operations without any host windowing library. Pitch defaults to a tight
// packing (width*bpp); callers needing row padding can override it.
type fakeSurface struct {
	w, h, bpp, pitch int
	pix              []byte
	format           bmask.PixelFormat
}

func newFakeSurface(w, h, bpp int) *fakeSurface {
	pitch := w * bpp
	return &fakeSurface{w: w, h: h, bpp: bpp, pitch: pitch, pix: make([]byte, pitch*h)}
}

func (f *fakeSurface) Width() int             { return f.w }
func (f *fakeSurface) Height() int            { return f.h }
func (f *fakeSurface) Pitch() int             { return f.pitch }
func (f *fakeSurface) BytesPerPixel() int     { return f.bpp }
func (f *fakeSurface) Pixels() []byte         { return f.pix }
func (f *fakeSurface) Format() bmask.PixelFormat { return f.format }

func (f *fakeSurface) setPixel(x, y int, v []byte) {
	off := y*f.pitch + x*f.bpp
	copy(f.pix[off:off+f.bpp], v)
}

func (f *fakeSurface) getPixel(x, y int) []byte {
	off := y*f.pitch + x*f.bpp
	out := make([]byte, f.bpp)
	copy(out, f.pix[off:off+f.bpp])
	return out
}

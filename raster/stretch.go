package raster

import "github.com/blitkit/bmask"

// Stretch fills dst with src nearest-neighbor resampled to dst's
// dimensions, using a Bresenham-style integer DDA. dst must
// be at least 1x1; src and dst must not alias.
func Stretch(dst, src bmask.Surface) {
	bpp := src.BytesPerPixel()
	srcPix := src.Pixels()
	dstPix := dst.Pixels()
	srcPitch := src.Pitch()
	dstPitch := dst.Pitch()

	dstWidth2 := dst.Width() << 1
	dstHeight2 := dst.Height() << 1
	srcWidth2 := src.Width() << 1
	srcHeight2 := src.Height() << 1

	hErr := srcHeight2 - dstHeight2

	srcRow := 0
	dstRow := 0
	for looph := 0; looph < dst.Height(); looph++ {
		srcOff := srcRow
		dstOff := dstRow
		wErr := srcWidth2 - dstWidth2
		for loopw := 0; loopw < dst.Width(); loopw++ {
			copyPixel(dstPix, dstOff, srcPix, srcOff, bpp)
			dstOff += bpp
			for wErr >= 0 {
				srcOff += bpp
				wErr -= dstWidth2
			}
			wErr += srcWidth2
		}
		for hErr >= 0 {
			srcRow += srcPitch
			hErr -= dstHeight2
		}
		dstRow += dstPitch
		hErr += srcHeight2
	}
}

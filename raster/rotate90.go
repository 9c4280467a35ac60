package raster

import "github.com/blitkit/bmask"

// Rotate90 fills dst with src rotated by a multiple of 90 degrees (spec
// §4.6). dst must already have the rotated dimensions (h×w for a 90 or 270
// degree turn, w×h otherwise); this is the caller's responsibility. src and
// dst must not alias.
func Rotate90(dst, src bmask.Surface, angle int) {
	n := (angle / 90) % 4
	if n < 0 {
		n += 4
	}

	bpp := src.BytesPerPixel()
	srcPix := src.Pixels()
	dstPix := dst.Pixels()

	srcStepX := bpp
	srcStepY := src.Pitch()
	dstStepX := bpp
	dstStepY := dst.Pitch()
	srcRow := 0

	switch n {
	case 1:
		srcRow += (src.Width() - 1) * srcStepX
		srcStepY = -srcStepX
		srcStepX = src.Pitch()
	case 2:
		srcRow += (src.Height()-1)*srcStepY + (src.Width()-1)*srcStepX
		srcStepX = -srcStepX
		srcStepY = -srcStepY
	case 3:
		srcRow += (src.Height() - 1) * srcStepY
		srcStepX = -srcStepY
		srcStepY = bpp
	}

	dstRow := 0
	for y := 0; y < dst.Height(); y++ {
		srcOff := srcRow
		dstOff := dstRow
		for x := 0; x < dst.Width(); x++ {
			copyPixel(dstPix, dstOff, srcPix, srcOff, bpp)
			srcOff += srcStepX
			dstOff += dstStepX
		}
		srcRow += srcStepY
		dstRow += dstStepY
	}
}

func copyPixel(dst []byte, dstOff int, src []byte, srcOff, bpp int) {
	for i := 0; i < bpp; i++ {
		dst[dstOff+i] = src[srcOff+i]
	}
}

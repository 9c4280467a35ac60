package raster

import (
	"math"

	"github.com/blitkit/bmask"
)

// Rotate fills dst with src rotated about its center by the angle whose
// sine and cosine are sinTheta and cosTheta, using fixed-point (16.16)
// nearest-neighbor sampling. Destination pixels sampling
// outside src are filled with bgcolor. src and dst must not alias.
func Rotate(dst, src bmask.Surface, bgcolor uint32, sinTheta, cosTheta float64) {
	bpp := src.BytesPerPixel()
	srcPix := src.Pixels()
	dstPix := dst.Pixels()
	srcPitch := src.Pitch()
	dstPitch := dst.Pitch()

	cy := dst.Height() / 2
	xd := (src.Width() - dst.Width()) << 15
	yd := (src.Height() - dst.Height()) << 15

	isin := int(sinTheta * 65536)
	icos := int(cosTheta * 65536)

	ax := (dst.Width() << 15) - int(cosTheta*float64((dst.Width()-1)<<15))
	ay := (dst.Height() << 15) - int(sinTheta*float64((dst.Width()-1)<<15))

	xmaxval := (src.Width() << 16) - 1
	ymaxval := (src.Height() << 16) - 1

	dstRow := 0
	for y := 0; y < dst.Height(); y++ {
		dx := ax + isin*(cy-y) + xd
		dy := ay - icos*(cy-y) + yd
		dstOff := dstRow
		for x := 0; x < dst.Width(); x++ {
			if dx < 0 || dy < 0 || dx > xmaxval || dy > ymaxval {
				writeBG(dstPix, dstOff, bpp, bgcolor)
			} else {
				srcOff := (dy>>16)*srcPitch + (dx>>16)*bpp
				copyPixel(dstPix, dstOff, srcPix, srcOff, bpp)
			}
			dx += icos
			dy += isin
			dstOff += bpp
		}
		dstRow += dstPitch
	}
}

// RotateAngle is a degrees-based convenience wrapper over Rotate.
func RotateAngle(dst, src bmask.Surface, bgcolor uint32, degrees float64) {
	rad := degrees * math.Pi / 180
	Rotate(dst, src, bgcolor, math.Sin(rad), math.Cos(rad))
}

func writeBG(dst []byte, off, bpp int, bgcolor uint32) {
	switch bpp {
	case 1:
		dst[off] = byte(bgcolor)
	case 2:
		dst[off] = byte(bgcolor)
		dst[off+1] = byte(bgcolor >> 8)
	case 3:
		dst[off] = byte(bgcolor)
		dst[off+1] = byte(bgcolor >> 8)
		dst[off+2] = byte(bgcolor >> 16)
	default: // 4
		dst[off] = byte(bgcolor)
		dst[off+1] = byte(bgcolor >> 8)
		dst[off+2] = byte(bgcolor >> 16)
		dst[off+3] = byte(bgcolor >> 24)
	}
}

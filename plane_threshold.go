package bmask

// Threshold sets dst[x,y] for every pixel of src whose colour is within
// threshold's per-channel tolerance of a reference colour. When other is
// non-nil the reference is other's pixel at (x,y); otherwise
// it is color, decoded once against src's format. dst must have src's
// dimensions.
//
// Degenerate path: when both src and other are 8-bit surfaces and
// paletteColors is false, channels are not decoded at all — the raw byte
// values are compared with tolerance tr only, matching the source library's
// "treat 8-bit as greyscale, not palette index" escape hatch.
func Threshold(dst *Plane, src Surface, other Surface, color, threshold uint32, paletteColors bool) error {
	if dst.w != src.Width() || dst.h != src.Height() {
		panic((&ValidationError{Field: "dst", Message: "must match src's dimensions"}).WithContext("Threshold"))
	}
	format := src.Format()
	r, g, b, _ := DecodeRGBA(format, color)
	tr, tg, tb, _ := DecodeRGBA(format, threshold)

	srcPixels := src.Pixels()
	srcBpp := src.BytesPerPixel()
	srcPitch := src.Pitch()

	var otherPixels []byte
	var otherBpp, otherPitch int
	var otherFormat PixelFormat
	if other != nil {
		otherPixels = other.Pixels()
		otherBpp = other.BytesPerPixel()
		otherPitch = other.Pitch()
		otherFormat = other.Format()
	}

	rawGreyscale := other != nil && srcBpp == 1 && otherBpp == 1 && !paletteColors

	for y := 0; y < src.Height(); y++ {
		srcRow := y * srcPitch
		var otherRow int
		if other != nil {
			otherRow = y * otherPitch
		}
		for x := 0; x < src.Width(); x++ {
			sPixel := readPixel(srcPixels, srcRow+x*srcBpp, srcBpp)

			if rawGreyscale {
				oPixel := readPixel(otherPixels, otherRow+x*otherBpp, otherBpp)
				if absDiff32(oPixel, sPixel) < uint32(tr) {
					dst.SetBit(x, y)
				}
				continue
			}

			sr, sg, sb, _ := DecodeRGBA(format, sPixel)
			var rr, rg, rb uint8
			if other != nil {
				oPixel := readPixel(otherPixels, otherRow+x*otherBpp, otherBpp)
				rr, rg, rb, _ = DecodeRGBA(otherFormat, oPixel)
			} else {
				rr, rg, rb = r, g, b
			}
			if absDiff8(sr, rr) < tr && absDiff8(sg, rg) < tg && absDiff8(sb, rb) < tb {
				dst.SetBit(x, y)
			}
		}
	}
	return nil
}

func absDiff8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func absDiff32(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// ThresholdColor sets dst[x,y] for every pixel of src within tolerance of
// color, a convenience wrapper over Threshold with no reference surface.
func ThresholdColor(dst *Plane, src Surface, color, threshold uint32) error {
	return Threshold(dst, src, nil, color, threshold, true)
}

// ThresholdSurface sets dst[x,y] for every pixel of src within tolerance of
// the corresponding pixel of other, a convenience wrapper over Threshold.
func ThresholdSurface(dst *Plane, src, other Surface, threshold uint32, paletteColors bool) error {
	return Threshold(dst, src, other, 0, threshold, paletteColors)
}

package raster

import (
	"errors"
	"runtime"
	"sync"

	"github.com/blitkit/bmask"
)

// ErrUnsupportedBpp is returned by Smoothscale and SmoothscaleConcurrent
// when src's bytes-per-pixel is not 3 or 4.
var ErrUnsupportedBpp = errors.New("raster: smoothscale requires a 24 or 32 bit source")

// Smoothscale fills dst with src resampled to dst's dimensions using a
// two-pass separable filter: area-averaging on shrink, bilinear on expand.
// src must be 24 or 32 bpp; a 24-bit source is promoted to 32
// bpp internally and the result demoted back. src and dst must not alias.
func Smoothscale(dst, src bmask.Surface) error {
	return smoothscale(dst, src, false)
}

// SmoothscaleConcurrent is a row-parallel variant of Smoothscale, adding
// external parallelism while keeping outputs bit-identical to the serial
// version; every row of the X pass and of
// filter_expand_Y is independent of its siblings and is split across
// GOMAXPROCS workers. filter_shrink_Y carries a running accumulator from
// one source row to the next and is not parallelized.
func SmoothscaleConcurrent(dst, src bmask.Surface) error {
	return smoothscale(dst, src, true)
}

func smoothscale(dst, src bmask.Surface, concurrent bool) error {
	bpp := src.BytesPerPixel()
	if bpp != 3 && bpp != 4 {
		return ErrUnsupportedBpp
	}

	srcWidth, srcHeight := src.Width(), src.Height()
	dstWidth, dstHeight := dst.Width(), dst.Height()

	if srcWidth == dstWidth && srcHeight == dstHeight {
		copyRows(dst.Pixels(), dst.Pitch(), src.Pixels(), src.Pitch(), srcWidth*bpp, srcHeight)
		return nil
	}

	srcPix := src.Pixels()
	srcPitch := src.Pitch()
	var dst32Pix []byte
	dst32Pitch := dst.Pitch()

	if bpp == 3 {
		newPitch := srcWidth * 4
		converted := make([]byte, newPitch*srcHeight)
		convert24to32(srcPix, srcPitch, converted, newPitch, srcWidth, srcHeight)
		srcPix = converted
		srcPitch = newPitch
		dst32Pitch = dstWidth * 4
		dst32Pix = make([]byte, dst32Pitch*dstHeight)
	} else {
		dst32Pix = dst.Pixels()
	}

	var tempPix []byte
	var tempWidth, tempPitch, tempHeight int
	if srcWidth != dstWidth && srcHeight != dstHeight {
		tempWidth = dstWidth
		tempPitch = tempWidth << 2
		tempHeight = srcHeight
		tempPix = make([]byte, tempPitch*tempHeight)
	}

	xPass := func(s, d []byte, sp, dp int) {
		if dstWidth < srcWidth {
			runFilter(concurrent, srcHeight, func(y0, y1 int) {
				filterShrinkX(s[y0*sp:], d[y0*dp:], y1-y0, sp, dp, srcWidth, dstWidth)
			})
		} else if dstWidth > srcWidth {
			runFilter(concurrent, srcHeight, func(y0, y1 int) {
				filterExpandX(s[y0*sp:], d[y0*dp:], y1-y0, sp, dp, srcWidth, dstWidth)
			})
		}
	}
	if srcHeight != dstHeight {
		xPass(srcPix, tempPix, srcPitch, tempPitch)
	} else {
		xPass(srcPix, dst32Pix, srcPitch, dst32Pitch)
	}

	if dstHeight < srcHeight {
		if srcWidth != dstWidth {
			filterShrinkY(tempPix, dst32Pix, tempWidth, tempPitch, dst32Pitch, srcHeight, dstHeight)
		} else {
			filterShrinkY(srcPix, dst32Pix, srcWidth, srcPitch, dst32Pitch, srcHeight, dstHeight)
		}
	} else if dstHeight > srcHeight {
		if srcWidth != dstWidth {
			runFilter(concurrent, dstHeight, func(y0, y1 int) {
				filterExpandYRange(tempPix, dst32Pix, tempWidth, tempPitch, dst32Pitch, srcHeight, dstHeight, y0, y1)
			})
		} else {
			runFilter(concurrent, dstHeight, func(y0, y1 int) {
				filterExpandYRange(srcPix, dst32Pix, srcWidth, srcPitch, dst32Pitch, srcHeight, dstHeight, y0, y1)
			})
		}
	}

	if bpp == 3 {
		convert32to24(dst32Pix, dst32Pitch, dst.Pixels(), dst.Pitch(), dstWidth, dstHeight)
	}
	return nil
}

// runFilter splits [0,total) into chunks and runs fn(y0,y1) for each,
// concurrently when requested.
func runFilter(concurrent bool, total int, fn func(y0, y1 int)) {
	if !concurrent || total == 0 {
		fn(0, total)
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		fn(0, total)
		return
	}
	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < total; y0 += chunk {
		y1 := min(y0+chunk, total)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

func copyRows(dst []byte, dstPitch int, src []byte, srcPitch int, rowBytes, rows int) {
	for y := 0; y < rows; y++ {
		copy(dst[y*dstPitch:y*dstPitch+rowBytes], src[y*srcPitch:y*srcPitch+rowBytes])
	}
}

func convert24to32(srcpix []byte, srcpitch int, dstpix []byte, dstpitch, width, height int) {
	srcdiff := srcpitch - width*3
	dstdiff := dstpitch - width*4
	si, di := 0, 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dstpix[di] = srcpix[si]
			dstpix[di+1] = srcpix[si+1]
			dstpix[di+2] = srcpix[si+2]
			dstpix[di+3] = 0xff
			si += 3
			di += 4
		}
		si += srcdiff
		di += dstdiff
	}
}

func convert32to24(srcpix []byte, srcpitch int, dstpix []byte, dstpitch, width, height int) {
	srcdiff := srcpitch - width*4
	dstdiff := dstpitch - width*3
	si, di := 0, 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dstpix[di] = srcpix[si]
			dstpix[di+1] = srcpix[si+1]
			dstpix[di+2] = srcpix[si+2]
			si += 4
			di += 3
		}
		si += srcdiff
		di += dstdiff
	}
}

// filterShrinkX is an area-averaging shrink along rows.
func filterShrinkX(srcpix, dstpix []byte, height, srcpitch, dstpitch, srcwidth, dstwidth int) {
	srcdiff := srcpitch - srcwidth*4
	dstdiff := dstpitch - dstwidth*4
	xspace := 0x10000 * srcwidth / dstwidth
	xrecip := int64(0x100000000) / int64(xspace)

	si, di := 0, 0
	for y := 0; y < height; y++ {
		var acc [4]int64
		xcounter := xspace
		for x := 0; x < srcwidth; x++ {
			if xcounter > 0x10000 {
				acc[0] += int64(srcpix[si])
				acc[1] += int64(srcpix[si+1])
				acc[2] += int64(srcpix[si+2])
				acc[3] += int64(srcpix[si+3])
				si += 4
				xcounter -= 0x10000
			} else {
				xfrac := 0x10000 - xcounter
				for c := 0; c < 4; c++ {
					dstpix[di+c] = byte(((acc[c] + ((int64(srcpix[si+c]) * int64(xcounter)) >> 16)) * xrecip) >> 16)
					acc[c] = (int64(srcpix[si+c]) * int64(xfrac)) >> 16
				}
				di += 4
				si += 4
				xcounter = xspace - xfrac
			}
		}
		si += srcdiff
		di += dstdiff
	}
}

// filterShrinkY is an area-averaging shrink along columns using a per-row
// u16-equivalent accumulator line. Not parallelizable: the
// accumulator carries state from one source row to the next.
func filterShrinkY(srcpix, dstpix []byte, width, srcpitch, dstpitch, srcheight, dstheight int) {
	srcdiff := srcpitch - width*4
	yspace := 0x10000 * srcheight / dstheight
	yrecip := int64(0x100000000) / int64(yspace)
	ycounter := yspace

	templine := make([]int64, width*4)
	si, di := 0, 0
	for y := 0; y < srcheight; y++ {
		if ycounter > 0x10000 {
			for i := range templine {
				templine[i] += int64(srcpix[si+i])
			}
			si += width * 4
			ycounter -= 0x10000
		} else {
			yfrac := 0x10000 - ycounter
			for i := range templine {
				dstpix[di+i] = byte(((templine[i] + ((int64(srcpix[si+i]) * int64(ycounter)) >> 16)) * yrecip) >> 16)
			}
			di += dstpitch
			for i := range templine {
				templine[i] = (int64(srcpix[si+i]) * int64(yfrac)) >> 16
			}
			si += width * 4
			ycounter = yspace - yfrac
		}
		si += srcdiff
	}
}

// filterExpandX is a bilinear expand along rows.
func filterExpandX(srcpix, dstpix []byte, height, srcpitch, dstpitch, srcwidth, dstwidth int) {
	dstdiff := dstpitch - dstwidth*4
	xidx0 := make([]int, dstwidth)
	xmult0 := make([]int, dstwidth)
	xmult1 := make([]int, dstwidth)
	for x := 0; x < dstwidth; x++ {
		xidx0[x] = x * (srcwidth - 1) / dstwidth
		xmult1[x] = 0x10000 * ((x * (srcwidth - 1)) % dstwidth) / dstwidth
		xmult0[x] = 0x10000 - xmult1[x]
	}

	di := 0
	for y := 0; y < height; y++ {
		rowBase := y * srcpitch
		for x := 0; x < dstwidth; x++ {
			s := rowBase + xidx0[x]*4
			m0, m1 := xmult0[x], xmult1[x]
			dstpix[di] = byte((int(srcpix[s])*m0 + int(srcpix[s+4])*m1) >> 16)
			dstpix[di+1] = byte((int(srcpix[s+1])*m0 + int(srcpix[s+5])*m1) >> 16)
			dstpix[di+2] = byte((int(srcpix[s+2])*m0 + int(srcpix[s+6])*m1) >> 16)
			dstpix[di+3] = byte((int(srcpix[s+3])*m0 + int(srcpix[s+7])*m1) >> 16)
			di += 4
		}
		di += dstdiff
	}
}

// filterExpandYRange is a bilinear expand along columns, restricted to
// destination rows [y0,y1) so callers can run disjoint
// ranges concurrently; every destination row reads only two source rows
// and writes only its own output row.
func filterExpandYRange(srcpix, dstpix []byte, width, srcpitch, dstpitch, srcheight, dstheight, y0, y1 int) {
	for y := y0; y < y1; y++ {
		yidx0 := y * (srcheight - 1) / dstheight
		row0 := yidx0 * srcpitch
		row1 := row0 + srcpitch
		ymult1 := 0x10000 * ((y * (srcheight - 1)) % dstheight) / dstheight
		ymult0 := 0x10000 - ymult1
		di := y * dstpitch
		for x := 0; x < width*4; x++ {
			dstpix[di+x] = byte((int(srcpix[row0+x])*ymult0 + int(srcpix[row1+x])*ymult1) >> 16)
		}
	}
}

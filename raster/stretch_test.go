package raster_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/blitkit/bmask/raster"
)

func TestStretchLiteralScenario(t *testing.T) {
	src := newFakeSurface(2, 1, 1)
	src.setPixel(0, 0, []byte{0xAA})
	src.setPixel(1, 0, []byte{0xBB})

	dst4 := newFakeSurface(4, 1, 1)
	raster.Stretch(dst4, src)
	want4 := []byte{0xAA, 0xAA, 0xBB, 0xBB}
	if !bytes.Equal(dst4.pix, want4) {
		t.Fatalf("stretch to 4x1 = %v, want %v", dst4.pix, want4)
	}

	dst3 := newFakeSurface(3, 1, 1)
	raster.Stretch(dst3, src)
	want3 := []byte{0xAA, 0xAA, 0xBB}
	if !bytes.Equal(dst3.pix, want3) {
		t.Fatalf("stretch to 3x1 = %v, want %v", dst3.pix, want3)
	}
}

func TestStretchIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	src := newFakeSurface(11, 7, 4)
	fillRandom(src, rng)
	dst := newFakeSurface(11, 7, 4)
	raster.Stretch(dst, src)
	if !bytes.Equal(src.pix, dst.pix) {
		t.Fatal("stretch to identical dims must be a bit-identical copy")
	}
}

func TestStretchPreservesCorners(t *testing.T) {
	src := newFakeSurface(5, 5, 4)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			v := byte(x*16 + y)
			src.setPixel(x, y, []byte{v, v, v, v})
		}
	}
	dst := newFakeSurface(12, 9, 4)
	raster.Stretch(dst, src)

	if !bytes.Equal(dst.getPixel(0, 0), src.getPixel(0, 0)) {
		t.Fatal("top-left corner not preserved")
	}
	if !bytes.Equal(dst.getPixel(dst.w-1, dst.h-1), src.getPixel(src.w-1, src.h-1)) {
		t.Fatal("bottom-right corner not preserved")
	}
}

// Package bmask provides a packed, column-major bit-plane for pixel-accurate
// boolean rasterization at arbitrary integer offsets, plus 8-connected
// component labeling.
//
// Conventions:
//   - A Plane stores w*h logical bits across S = ceil(w/64) column stripes of
//     h words each. Word index for bit (x,y) is (x/64)*h + y, bit x mod 64
//     (LSB-first).
//   - Binary operations (Overlap, Draw, Erase, ...) place b's origin at
//     (xoffset, yoffset) inside a's frame. Offsets may be negative.
//   - Bits at logical x >= w (the right stripe's padding) are always zero
//     after any exported mutator returns.
//   - Allocating operations (Create, Scale, connected-component extraction)
//     return ErrAlloc instead of panicking when the requested size cannot be
//     represented.
//
// The pixel raster engine (rotation, stretch, smoothscale) that resamples a
// generic RGBA/indexed pixel Surface lives in the sibling raster package.
package bmask

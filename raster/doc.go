// Package raster implements pixel-level resampling of bmask.Surface
// buffers: quarter-turn and arbitrary-angle rotation, integer
// nearest-neighbor stretch, and a two-pass separable smoothscale (spec
// §4.6-§4.9). Every operation reads src and writes dst in place through the
// byte slice Pixels() exposes; none of them allocate or decode a surface
// themselves.
package raster

import "github.com/blitkit/bmask"

// Surface is bmask.Surface, re-exported so callers resampling pixels don't
// need to import the root package just to name the type they pass in.
type Surface = bmask.Surface

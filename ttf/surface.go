package ttf

import "image"

// Approximate bookkeeping bytes for each surface (struct, slice
// and image headers).
const surfaceOverhead = 88

// A rasterized text run. Surfaces are plain pixel copies: they stay
// valid after the font that produced them is closed. They must be
// treated as read-only, since glyph caches hand out the same surface
// to every caller.
type Surface struct {
	Image *image.NRGBA // bounds always start at (0, 0)
	Baseline int // y coordinate of the baseline
	Bearing int // x coordinate of the first glyph's origin
	Advance int // pen advance of the whole run, rounded up
}

// Returns the surface width in pixels.
func (self *Surface) Width() int { return self.Image.Rect.Dx() }

// Returns the surface height in pixels.
func (self *Surface) Height() int { return self.Image.Rect.Dy() }

// Returns an approximation of the memory used by the surface.
func (self *Surface) ByteSize() int {
	return len(self.Image.Pix) + surfaceOverhead
}

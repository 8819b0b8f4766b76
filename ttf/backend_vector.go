package ttf

import "image"

import "github.com/pkg/errors"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"
import xfont "golang.org/x/image/font"

import "github.com/tinne26/glyphcache/font"
import "github.com/tinne26/glyphcache/mask"

var _ glyphFace = (*vectorFace)(nil)

// Renders sfnt outlines with the mask package rasterizer.
type vectorFace struct {
	sfnt *sfnt.Font
	buffer sfnt.Buffer
	ppem fixed.Int26_6
	hinting xfont.Hinting
	rasterizer mask.DefaultRasterizer
}

func newVectorFace(source *font.Source, size int, opts *Options) (*vectorFace, error) {
	return &vectorFace{
		sfnt: source.SFNT,
		ppem: pixelsPerEm(size, opts.DPI),
		hinting: opts.Hinting,
	}, nil
}

func (self *vectorFace) metrics() (fixed.Int26_6, fixed.Int26_6, error) {
	metrics, err := self.sfnt.Metrics(&self.buffer, self.ppem, self.hinting)
	if err != nil { return 0, 0, errors.Wrap(err, "font metrics") }
	return metrics.Ascent, metrics.Descent, nil
}

func (self *vectorFace) measure(codePoint rune) (fixed.Rectangle26_6, fixed.Int26_6, error) {
	index, err := self.sfnt.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return fixed.Rectangle26_6{}, 0, err }
	advance, err := self.sfnt.GlyphAdvance(&self.buffer, index, self.ppem, self.hinting)
	if err != nil { return fixed.Rectangle26_6{}, 0, err }

	// outline bounds match the extents of the rasterized masks
	segments, err := self.sfnt.LoadGlyph(&self.buffer, index, self.ppem, nil)
	if err != nil { return fixed.Rectangle26_6{}, 0, err }
	if !hasInk(segments) { return fixed.Rectangle26_6{}, advance, nil }
	return segments.Bounds(), advance, nil
}

func (self *vectorFace) draw(dst *image.Alpha, dot fixed.Point26_6, codePoint rune) (fixed.Int26_6, error) {
	index, err := self.sfnt.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return 0, err }
	advance, err := self.sfnt.GlyphAdvance(&self.buffer, index, self.ppem, self.hinting)
	if err != nil { return 0, err }

	// segments are only valid until the next buffer use
	segments, err := self.sfnt.LoadGlyph(&self.buffer, index, self.ppem, nil)
	if err != nil { return 0, err }
	glyphMask, err := mask.Rasterize(segments, &self.rasterizer, dot)
	if err != nil { return 0, err }
	if glyphMask == nil { return advance, nil } // e.g. spaces

	origin := image.Pt(dot.X.Floor(), dot.Y.Floor())
	addCoverage(dst, glyphMask.Rect.Add(origin), glyphMask, glyphMask.Rect.Min)
	return advance, nil
}

func (self *vectorFace) close() error {
	self.sfnt = nil
	return nil
}

// Whether the outline has any drawing segment.
func hasInk(segments sfnt.Segments) bool {
	for _, segment := range segments {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}

// Converts a pixel size at the given DPI to a 26.6 ppem value.
func pixelsPerEm(size int, dpi float64) fixed.Int26_6 {
	return fixed.Int26_6(float64(size)*dpi*64/72 + 0.5)
}

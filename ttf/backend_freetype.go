package ttf

import "image"

import "github.com/pkg/errors"
import "github.com/golang/freetype/truetype"
import "golang.org/x/image/math/fixed"
import xfont "golang.org/x/image/font"

import "github.com/tinne26/glyphcache/font"

var _ glyphFace = (*freetypeFace)(nil)

// Renders glyphs through a golang/freetype face. Only TrueType
// outlines are supported; CFF based .otf fonts fail to open.
type freetypeFace struct {
	face xfont.Face
}

func newFreetypeFace(source *font.Source, size int, opts *Options) (*freetypeFace, error) {
	ttFont, err := truetype.Parse(source.Data)
	if err != nil { return nil, errors.Wrap(err, "freetype parse") }
	face := truetype.NewFace(ttFont, &truetype.Options{
		Size: float64(size),
		DPI: opts.DPI,
		Hinting: opts.Hinting,
	})
	return &freetypeFace{ face: face }, nil
}

func (self *freetypeFace) metrics() (fixed.Int26_6, fixed.Int26_6, error) {
	metrics := self.face.Metrics()
	return metrics.Ascent, metrics.Descent, nil
}

func (self *freetypeFace) measure(codePoint rune) (fixed.Rectangle26_6, fixed.Int26_6, error) {
	bounds, advance, ok := self.face.GlyphBounds(codePoint)
	if !ok { return fixed.Rectangle26_6{}, 0, errors.Errorf("no bounds for %U", codePoint) }
	return bounds, advance, nil
}

func (self *freetypeFace) draw(dst *image.Alpha, dot fixed.Point26_6, codePoint rune) (fixed.Int26_6, error) {
	target, glyphMask, maskPt, advance, ok := self.face.Glyph(dot, codePoint)
	if !ok { return 0, errors.Errorf("can't load glyph for %U", codePoint) }
	if !target.Empty() {
		addCoverage(dst, target, glyphMask, maskPt)
	}
	return advance, nil
}

func (self *freetypeFace) close() error {
	return self.face.Close()
}

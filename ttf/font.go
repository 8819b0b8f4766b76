package ttf

import "sync"
import "image"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/glyphcache/font"

// A font opened at a specific size. Fonts are owned by whoever opened
// them and must be released with [Font.Close]() exactly once.
//
// A single font can be shared by multiple glyph caches; rendering calls
// on the same font are serialized internally.
type Font struct {
	source *font.Source
	size int
	face glyphFace // nil once closed
	ascent fixed.Int26_6
	descent fixed.Int26_6
	mutex sync.Mutex
}

// Backend-specific glyph access. Implementations are not concurrent-safe.
type glyphFace interface {
	metrics() (ascent, descent fixed.Int26_6, err error)

	// Returns the ink bounds relative to the glyph origin (empty for
	// glyphs without ink) and the glyph advance.
	measure(codePoint rune) (fixed.Rectangle26_6, fixed.Int26_6, error)

	// Adds the glyph coverage to dst with its origin at the given dot,
	// which will always have an integer y. Returns the glyph advance.
	draw(dst *image.Alpha, dot fixed.Point26_6, codePoint rune) (fixed.Int26_6, error)
	close() error
}

func newFont(source *font.Source, size int, opts *Options) (*Font, error) {
	var face glyphFace
	var err error
	switch opts.Backend {
	case BackendFreetype:
		face, err = newFreetypeFace(source, size, opts)
	default:
		face, err = newVectorFace(source, size, opts)
	}
	if err != nil { return nil, err }

	ascent, descent, err := face.metrics()
	if err != nil {
		_ = face.close()
		return nil, err
	}
	return &Font{
		source: source,
		size: size,
		face: face,
		ascent: ascent,
		descent: descent,
	}, nil
}

// Releases the font. Subsequent calls return [ErrFontClosed], and so
// does any attempt to render with it.
func (self *Font) Close() error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.face == nil { return ErrFontClosed }
	err := self.face.close()
	self.face = nil
	return err
}

// Whether [Font.Close]() has already been called.
func (self *Font) Closed() bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.face == nil
}

// Returns the size the font was opened with, in pixels.
func (self *Font) Size() int { return self.size }

// Returns the full name of the font, which may be empty.
func (self *Font) Name() string { return self.source.Name }

// Returns the path the font was opened from.
func (self *Font) Path() string { return self.source.Path }

// Returns the parsed font source. Sources are shared between
// fonts opened from the same path and must not be modified.
func (self *Font) Source() *font.Source { return self.source }

// Returns the ascent, in pixels, rounded up.
func (self *Font) Ascent() int { return self.ascent.Ceil() }

// Returns the height of the surfaces rendered with this font.
func (self *Font) Height() int { return self.ascent.Ceil() + self.descent.Ceil() }

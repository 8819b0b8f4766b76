package cache

import "log"
import "image/color"
import "unicode/utf8"

import "github.com/pkg/errors"

import "github.com/tinne26/glyphcache/ttf"

// Rasterizer is the text rendering collaborator of glyph caches.
// [*ttf.Context] satisfies it.
type Rasterizer interface {
	RenderBlended(font *ttf.Font, text []byte, clr color.NRGBA) (*ttf.Surface, error)
}

// Returned when a glyph is requested for a rune that isn't a valid
// Unicode scalar value (surrogate halves and values above U+10FFFF).
var ErrInvalidCodepoint = errors.New("invalid codepoint")

// Rasterizers exposing a logger (like [*ttf.Context]) lend it
// to the caches built on top of them.
type loggerSource interface {
	Logger() ttf.Logger
}

func defaultLogger(rasterizer Rasterizer) ttf.Logger {
	source, ok := rasterizer.(loggerSource)
	if ok && source.Logger() != nil { return source.Logger() }
	return log.Default()
}

// Two keys are equal only if the codepoint and all four color
// channels match exactly.
type glyphKey struct {
	codePoint rune
	color color.NRGBA
}

// Compact string form for singleflight.
func (self glyphKey) flightKey() string {
	cp := uint32(self.codePoint)
	return string([]byte{
		byte(cp >> 24), byte(cp >> 16), byte(cp >> 8), byte(cp),
		self.color.R, self.color.G, self.color.B, self.color.A,
	})
}

// Encodes the codepoint as a one rune text run in the given buffer
// and renders it. The buffer is returned for reuse.
func renderGlyph(rasterizer Rasterizer, font *ttf.Font, key glyphKey, buffer []byte) (*ttf.Surface, []byte, error) {
	if !utf8.ValidRune(key.codePoint) {
		return nil, buffer, errors.Wrapf(ErrInvalidCodepoint, "%U", key.codePoint)
	}
	buffer = utf8.AppendRune(buffer[ : 0], key.codePoint)
	surface, err := rasterizer.RenderBlended(font, buffer, key.color)
	if err != nil { return nil, buffer, err }
	if surface == nil { return nil, buffer, errors.New("rasterizer returned nil surface") }
	return surface, buffer, nil
}

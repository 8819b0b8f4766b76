package cache

import "image/color"

import "github.com/tinne26/glyphcache/ttf"

// A GlyphCache renders each (codepoint, color) pair at most once and
// hands out the same [*ttf.Surface] on every later request.
//
// Failed renders are not remembered: requesting the same glyph again
// retries the rasterization.
//
// GlyphCache is not concurrent-safe. Use one cache per rendering
// goroutine, an external mutex, or [SyncGlyphCache].
type GlyphCache struct {
	rasterizer Rasterizer
	logger ttf.Logger
	glyphs map[glyphKey]*ttf.Surface
	textBuffer []byte
	byteSize int
}

// Creates a new, empty glyph cache on top of the given rasterizer.
// A nil rasterizer will panic.
func NewGlyphCache(rasterizer Rasterizer) *GlyphCache {
	if rasterizer == nil { panic("nil rasterizer") } // likely a dev mistake
	return &GlyphCache{
		rasterizer: rasterizer,
		logger: defaultLogger(rasterizer),
		glyphs: make(map[glyphKey]*ttf.Surface, 64),
		textBuffer: make([]byte, 0, 4),
	}
}

// Sets the logger used to report rendering failures. A nil
// logger restores the default.
func (self *GlyphCache) SetLogger(logger ttf.Logger) {
	if logger == nil { logger = defaultLogger(self.rasterizer) }
	self.logger = logger
}

// Returns the surface for the given codepoint and color, rendering it
// with the given font only if it's not cached yet.
//
// On failure, the error is logged and returned along a nil surface,
// which callers should treat as "skip drawing this glyph".
func (self *GlyphCache) GetGlyph(font *ttf.Font, codePoint rune, clr color.NRGBA) (*ttf.Surface, error) {
	key := glyphKey{ codePoint: codePoint, color: clr }
	surface, found := self.glyphs[key]
	if found { return surface, nil }

	var err error
	surface, self.textBuffer, err = renderGlyph(self.rasterizer, font, key, self.textBuffer)
	if err != nil {
		self.logger.Printf("render blended: %s", err)
		return nil, err
	}

	self.glyphs[key] = surface
	self.byteSize += surface.ByteSize()
	return surface, nil
}

// Returns whether the glyph is already cached. Never renders.
func (self *GlyphCache) Has(codePoint rune, clr color.NRGBA) bool {
	_, found := self.glyphs[glyphKey{ codePoint: codePoint, color: clr }]
	return found
}

// Returns the number of cached glyphs.
func (self *GlyphCache) Len() int { return len(self.glyphs) }

// Returns an approximation of the bytes taken by the cached surfaces.
func (self *GlyphCache) ApproxByteSize() int { return self.byteSize }

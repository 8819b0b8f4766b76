package cache

import "sync"
import "image/color"

import "golang.org/x/sync/singleflight"

import "github.com/tinne26/glyphcache/ttf"

// A concurrent-safe [GlyphCache]. Concurrent misses on the same glyph
// are collapsed into a single rasterization whose result is shared by
// all the waiting callers.
type SyncGlyphCache struct {
	rasterizer Rasterizer
	logger ttf.Logger
	glyphs map[glyphKey]*ttf.Surface
	byteSize int
	flights singleflight.Group
	mutex sync.RWMutex
}

// Creates a new, empty concurrent-safe glyph cache. A nil rasterizer
// will panic. The rasterizer itself must be concurrent-safe, which is
// the case for [*ttf.Context].
func NewSyncGlyphCache(rasterizer Rasterizer) *SyncGlyphCache {
	if rasterizer == nil { panic("nil rasterizer") }
	return &SyncGlyphCache{
		rasterizer: rasterizer,
		logger: defaultLogger(rasterizer),
		glyphs: make(map[glyphKey]*ttf.Surface, 64),
	}
}

// Sets the logger used to report rendering failures. A nil
// logger restores the default.
func (self *SyncGlyphCache) SetLogger(logger ttf.Logger) {
	if logger == nil { logger = defaultLogger(self.rasterizer) }
	self.mutex.Lock()
	self.logger = logger
	self.mutex.Unlock()
}

// Same as [GlyphCache.GetGlyph](), but safe for concurrent use.
// Each failed rasterization is logged once, no matter how many
// callers were waiting for it.
func (self *SyncGlyphCache) GetGlyph(font *ttf.Font, codePoint rune, clr color.NRGBA) (*ttf.Surface, error) {
	key := glyphKey{ codePoint: codePoint, color: clr }
	surface, found := self.lookup(key)
	if found { return surface, nil }

	value, err, _ := self.flights.Do(key.flightKey(), func() (any, error) {
		surface, found := self.lookup(key)
		if found { return surface, nil }

		surface, _, err := renderGlyph(self.rasterizer, font, key, nil)
		if err != nil {
			self.mutex.RLock()
			logger := self.logger
			self.mutex.RUnlock()
			logger.Printf("render blended: %s", err)
			return nil, err
		}

		self.mutex.Lock()
		self.glyphs[key] = surface
		self.byteSize += surface.ByteSize()
		self.mutex.Unlock()
		return surface, nil
	})
	if err != nil { return nil, err }
	return value.(*ttf.Surface), nil
}

// Returns the number of cached glyphs.
func (self *SyncGlyphCache) Len() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.glyphs)
}

// Returns an approximation of the bytes taken by the cached surfaces.
func (self *SyncGlyphCache) ApproxByteSize() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.byteSize
}

func (self *SyncGlyphCache) lookup(key glyphKey) (*ttf.Surface, bool) {
	self.mutex.RLock()
	surface, found := self.glyphs[key]
	self.mutex.RUnlock()
	return surface, found
}

//go:build ebiten

package cache

import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/glyphcache/ttf"

// An ImageCache uploads the surfaces of a [GlyphCache] to Ebitengine
// images, once per surface. Like the underlying glyph cache, it never
// releases anything and is not concurrent-safe.
type ImageCache struct {
	uploads uploadCache[*ebiten.Image]
}

// Creates an image cache on top of the given glyph cache.
func NewImageCache(glyphs *GlyphCache) *ImageCache {
	return &ImageCache{ uploads: newUploadCache(glyphs, uploadSurface) }
}

func uploadSurface(surface *ttf.Surface) *ebiten.Image {
	return ebiten.NewImageFromImage(surface.Image)
}

// Returns the Ebitengine image for the given glyph. Failures follow
// [GlyphCache.GetGlyph]() and yield a nil image.
func (self *ImageCache) GetImage(font *ttf.Font, codePoint rune, clr color.NRGBA) (*ebiten.Image, error) {
	return self.uploads.get(font, codePoint, clr)
}

// Provides access to the underlying [GlyphCache].
func (self *ImageCache) GlyphCache() *GlyphCache { return self.uploads.glyphs }

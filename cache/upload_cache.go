package cache

import "image/color"

import "github.com/tinne26/glyphcache/ttf"

// An uploadCache converts the surfaces of a [GlyphCache] into some
// backend-specific image type, at most once per surface. It's the
// common core of the image caches for the different graphics backends.
type uploadCache[T any] struct {
	glyphs *GlyphCache
	upload func(*ttf.Surface) T
	images map[*ttf.Surface]T
}

func newUploadCache[T any](glyphs *GlyphCache, upload func(*ttf.Surface) T) uploadCache[T] {
	return uploadCache[T]{
		glyphs: glyphs,
		upload: upload,
		images: make(map[*ttf.Surface]T, 64),
	}
}

func (self *uploadCache[T]) get(font *ttf.Font, codePoint rune, clr color.NRGBA) (T, error) {
	surface, err := self.glyphs.GetGlyph(font, codePoint, clr)
	if err != nil {
		var zero T
		return zero, err
	}
	image, found := self.images[surface]
	if found { return image, nil }
	image = self.upload(surface)
	self.images[surface] = image
	return image, nil
}

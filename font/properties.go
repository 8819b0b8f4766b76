package font

import "sync/atomic"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// A single sfnt.Buffer shared by property queries. It's only used when
// nobody else holds it, otherwise the queries go without a buffer, which
// is slower but still correct.
var sfntBuffer *sfnt.Buffer
var usingSfntBuffer uint32 = 0
func getSfntBuffer() *sfnt.Buffer {
	if !atomic.CompareAndSwapUint32(&usingSfntBuffer, 0, 1) {
		return nil
	}
	if sfntBuffer == nil {
		sfntBuffer = &sfnt.Buffer{}
	}
	return sfntBuffer
}

func releaseSfntBuffer(buffer *sfnt.Buffer) {
	if buffer != nil {
		atomic.StoreUint32(&usingSfntBuffer, 0)
	}
}

// Returns the requested font property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getSfntBuffer()
	defer releaseSfntBuffer(buffer)
	str, err := font.Name(buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the full name of the given font. This is the name used
// in diagnostics by the ttf package.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the runes in the given text that the font can't represent.
// Repeated runes in the text may appear repeated in the result too.
//
// The glyph cache will happily render missing runes as the font's
// notdef glyph, so this is the place to check coverage beforehand.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := getSfntBuffer()
	defer releaseSfntBuffer(buffer)

	missing := make([]rune, 0)
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}

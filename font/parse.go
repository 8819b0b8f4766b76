package font

import "os"
import "io"
import "io/fs"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

// A parsed font file. The raw bytes are kept around because some
// rasterization backends need to parse them again on their own terms.
// Data must not be modified while the source is in use.
type Source struct {
	Path string // empty for sources parsed from raw bytes
	Name string // full font name, may be empty
	Data []byte
	SFNT *sfnt.Font
}

// Returned when the path doesn't end in .ttf or .otf.
var ErrUnsupportedFormat = errors.New("unsupported font format")

// Similar to [sfnt.Parse](), but returning a [Source] that
// includes the font name. A missing name is not an error.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*Source, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, errors.Wrap(err, "parse font") }
	fontName, err := GetName(newFont)
	if err != nil && err != ErrNotFound { return nil, err }
	return &Source{ Name: fontName, Data: fontBytes, SFNT: newFont }, nil
}

// Attempts to parse the font located at the given filepath.
// Supported formats are .ttf and .otf.
func ParseFromPath(path string) (*Source, error) {
	if !hasValidFontExtension(path) {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "invalid font path '%s'", path)
	}

	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file, path)
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*Source, error) {
	if !hasValidFontExtension(path) {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "invalid font path '%s'", path)
	}

	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file, path)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser, path string) (*Source, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }

	source, err := ParseFromBytes(fontBytes)
	if err != nil { return nil, errors.Wrapf(err, "'%s'", path) }
	source.Path = path
	return source, nil
}

// Whether font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path)-1] != 'f' { return false }
	if path[len(path)-2] != 't' { return false }
	thrd := path[len(path)-3]
	if thrd != 't' && thrd != 'o' { return false }
	return path[len(path)-4] == '.'
}

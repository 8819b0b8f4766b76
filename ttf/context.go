package ttf

import "log"
import "sync"
import "io/fs"
import "image"
import "image/color"
import "unicode/utf8"

import "github.com/pkg/errors"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/glyphcache/font"

// A Context holds the library state that would otherwise be global:
// configuration, parsed font sources and the last error diagnostic.
//
// Contexts must be created with [Init] and released with
// [Context.Quit]() once all rendering has ended. All methods are
// concurrent-safe, but fonts serialize their own rendering.
type Context struct {
	opts Options
	library *font.Library
	lastError string
	quit bool
	mutex sync.Mutex
}

// Initializes a new library context. A nil opts is equivalent to
// [DefaultOptions](). Failures are logged and returned wrapping
// [ErrInit]; they are not fatal, whether startup halts is up to
// the caller.
func Init(opts *Options) (*Context, error) {
	if opts == nil { opts = DefaultOptions() }
	config := *opts
	if config.Logger == nil { config.Logger = log.Default() }
	if err := config.validate(); err != nil {
		err = errors.Wrap(ErrInit, err.Error())
		config.Logger.Printf("ttf init: %s", err)
		return nil, err
	}

	return &Context{
		opts: config,
		library: font.NewLibrary(),
	}, nil
}

// Releases the context state. Fonts can still be closed afterwards,
// but opening or rendering will fail with [ErrNotInitialized].
// Calling Quit more than once has no effect.
func (self *Context) Quit() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.quit = true
	self.library = nil
}

// Returns the diagnostic message for the most recent failure
// on this context, or an empty string if nothing failed yet.
func (self *Context) LastError() string {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.lastError
}

// Returns the logger configured for the context.
func (self *Context) Logger() Logger { return self.opts.Logger }

// Returns the backend configured for the context.
func (self *Context) Backend() Backend { return self.opts.Backend }

// Opens the .ttf or .otf font at the given path with the given size
// in pixels (at 72 DPI). The file is parsed only once per context,
// even if it's opened at multiple sizes.
//
// Failures are not logged, only recorded for [Context.LastError]().
// See [Context.LoadFont]() for the logging variant.
func (self *Context) OpenFont(path string, size int) (*Font, error) {
	fnt, err := self.openFont(size, func(lib *font.Library) (*font.Source, error) {
		return lib.Load(path)
	})
	if err != nil { return nil, self.fail(err) }
	return fnt, nil
}

// The equivalent of [Context.OpenFont]() for filesystems. This
// is mainly provided to support [embed.FS] and embedded fonts.
func (self *Context) OpenFontFS(filesys fs.FS, path string, size int) (*Font, error) {
	fnt, err := self.openFont(size, func(lib *font.Library) (*font.Source, error) {
		return lib.LoadFS(filesys, path)
	})
	if err != nil { return nil, self.fail(err) }
	return fnt, nil
}

// Opens a font like [Context.OpenFont](), but reports failures through
// the context logger and signals them with a nil return, leaving the
// decision to abort or fall back to the caller.
func (self *Context) LoadFont(size int, path string) *Font {
	fnt, err := self.OpenFont(path, size)
	if err != nil {
		self.opts.Logger.Printf("ttf open font: %s", err)
		return nil
	}
	return fnt
}

// Blend-renders the given UTF-8 text run with the given font and color.
//
// The returned surface spans both the glyph advances and the glyph ink,
// so overhangs and negative side bearings are never clipped. The pen
// origin of the first glyph is at (Bearing, Baseline). The surface is
// as tall as the font's ascent plus descent, each rounded up. Pixels
// are non-premultiplied: RGB is always the given color and alpha is the
// glyph coverage scaled by the color's alpha.
func (self *Context) RenderBlended(fnt *Font, text []byte, clr color.NRGBA) (*Surface, error) {
	surface, err := self.renderBlended(fnt, text, clr)
	if err != nil { return nil, self.fail(err) }
	return surface, nil
}

func (self *Context) renderBlended(fnt *Font, text []byte, clr color.NRGBA) (*Surface, error) {
	if !self.isActive() { return nil, ErrNotInitialized }
	if fnt == nil { return nil, ErrNilFont }
	if !utf8.Valid(text) { return nil, ErrInvalidUTF8 }

	fnt.mutex.Lock()
	defer fnt.mutex.Unlock()
	if fnt.face == nil { return nil, ErrFontClosed }

	// measure advances and horizontal ink extents
	var penX, inkMinX, inkMaxX fixed.Int26_6
	for i := 0; i < len(text); {
		codePoint, size := utf8.DecodeRune(text[i : ])
		bounds, advance, err := fnt.face.measure(codePoint)
		if err != nil { return nil, errors.Wrapf(err, "glyph bounds for %U", codePoint) }
		if !bounds.Empty() {
			inkMinX = min(inkMinX, penX + bounds.Min.X)
			inkMaxX = max(inkMaxX, penX + bounds.Max.X)
		}
		penX += advance
		i += size
	}
	bearing := -inkMinX.Floor()
	width := bearing + max(penX, inkMaxX).Ceil()
	if width <= bearing { return nil, ErrZeroWidth }

	// accumulate coverage with each glyph at the baseline
	baseline := fnt.Ascent()
	coverage := image.NewAlpha(image.Rect(0, 0, width, fnt.Height()))
	dot := fixed.Point26_6{ X: fixed.I(bearing), Y: fixed.I(baseline) }
	for i := 0; i < len(text); {
		codePoint, size := utf8.DecodeRune(text[i : ])
		advance, err := fnt.face.draw(coverage, dot, codePoint)
		if err != nil { return nil, errors.Wrapf(err, "draw glyph %U", codePoint) }
		dot.X += advance
		i += size
	}

	return &Surface{
		Image: colorize(coverage, clr),
		Baseline: baseline,
		Bearing: bearing,
		Advance: penX.Ceil(),
	}, nil
}

func (self *Context) openFont(size int, load func(*font.Library) (*font.Source, error)) (*Font, error) {
	if size <= 0 { return nil, errors.Wrapf(ErrInvalidSize, "size %d", size) }

	self.mutex.Lock()
	library := self.library
	self.mutex.Unlock()
	if library == nil { return nil, ErrNotInitialized }

	source, err := load(library)
	if err != nil { return nil, err }
	return newFont(source, size, &self.opts)
}

func (self *Context) isActive() bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return !self.quit
}

// Records the error as the last error and returns it unchanged.
func (self *Context) fail(err error) error {
	self.mutex.Lock()
	self.lastError = err.Error()
	self.mutex.Unlock()
	return err
}

// The ttf subpackage is the rasterization library used by the glyph
// cache: it owns the library lifecycle ([Init] and [Context.Quit]),
// opens fonts at a given pixel size and blend-renders UTF-8 text runs
// into colored [Surface] values.
//
// Typical usage:
//   ctx, err := ttf.Init(nil)
//   if err != nil { ... } // already logged, the caller decides
//   defer ctx.Quit()
//
//   font := ctx.LoadFont(24, "assets/ui.ttf")
//   if font == nil { ... } // already logged
//   defer font.Close()
//
//   surface, err := ctx.RenderBlended(font, []byte("A"), color.NRGBA{255, 0, 0, 255})
//
// Two backends are available: [BackendVector] rasterizes sfnt outlines
// through the mask subpackage, while [BackendFreetype] relies on
// github.com/golang/freetype. Neither applies kerning, shaping or font
// fallback.
package ttf

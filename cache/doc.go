// The cache subpackage provides the [GlyphCache], which memoizes
// rendered glyph surfaces by codepoint and color, and a concurrent-safe
// [SyncGlyphCache] variant.
//
// Since glyph rasterization is an expensive CPU process, UI code should
// never render the same glyph twice. A cache remembers every surface it
// produces for its whole life: there's no eviction and no size bound.
// This is fine for the usual game UI where only a few dozen glyphs in a
// handful of colors are ever drawn, but long running sessions that keep
// producing new codepoint and color combinations should bound memory
// on their own, for example by dropping and recreating caches. The
// [GlyphCache.ApproxByteSize]() method can help decide when.
//
// Caches don't include the font in their keys. Use one cache per font.
package cache

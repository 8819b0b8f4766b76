// The mask subpackage defines the [Rasterizer] interface used to turn
// glyph outlines into alpha masks, and a [DefaultRasterizer] built on
// top of [golang.org/x/image/vector].
//
// Whenever text is rendered, font glyphs are first extracted from the
// font files as outlines (sets of lines and curves) and then drawn into
// a raster image (a grid of pixels). Masks only hold coverage; coloring
// them is the job of the ttf package.
package mask

package mask

import "image"

import "golang.org/x/image/math/fixed"

// Given the glyph bounds and an origin position indicating the subpixel
// positioning (only lowest bits will be taken into account), it returns
// the bounding integer width and heights, the normalization offset to be
// applied to keep the coordinates in the positive plane, and the final
// offset to be applied on the final mask to align its bounds to the glyph
// origin.
func figureOutBounds(bounds fixed.Rectangle26_6, origin fixed.Point26_6) (int, int, fixed.Point26_6, image.Point) {
	floorMinX := floor(bounds.Min.X)
	floorMinY := floor(bounds.Min.Y)
	maskCorrection := image.Pt(floorMinX.Floor(), floorMinY.Floor())

	var normOffset fixed.Point26_6
	normOffset.X = -floorMinX + (origin.X & 0x3F)
	normOffset.Y = -floorMinY + (origin.Y & 0x3F)
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width, height, normOffset, maskCorrection
}

func floor(value fixed.Int26_6) fixed.Int26_6 {
	return value & ^fixed.Int26_6(0x3F)
}

func toFloat32s(point fixed.Point26_6) (float32, float32) {
	return float32(point.X)/64, float32(point.Y)/64
}

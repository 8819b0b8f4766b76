package ttf

import "image"
import "image/color"

// Adds the mask coverage to the given target rectangle of dst,
// saturating at full coverage. The rectangle is clipped to dst.
func addCoverage(dst *image.Alpha, target image.Rectangle, mask image.Image, maskPt image.Point) {
	clipped := target.Intersect(dst.Rect)
	if clipped.Empty() { return }
	maskPt = maskPt.Add(clipped.Min.Sub(target.Min))

	alphaMask, isAlpha := mask.(*image.Alpha)
	for y := 0; y < clipped.Dy(); y++ {
		row := dst.PixOffset(clipped.Min.X, clipped.Min.Y + y)
		for x := 0; x < clipped.Dx(); x++ {
			mx, my := maskPt.X + x, maskPt.Y + y
			var value uint8
			if isAlpha {
				value = alphaMask.AlphaAt(mx, my).A
			} else {
				_, _, _, a := mask.At(mx, my).RGBA()
				value = uint8(a >> 8)
			}
			sum := uint16(dst.Pix[row + x]) + uint16(value)
			if sum > 255 { sum = 255 }
			dst.Pix[row + x] = uint8(sum)
		}
	}
}

// Converts a coverage mask to a non-premultiplied surface image where
// every pixel has the color's RGB and alpha = coverage*clr.A/255.
func colorize(coverage *image.Alpha, clr color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(coverage.Rect)
	for i, value := range coverage.Pix {
		pixel := img.Pix[i*4 : i*4 + 4 : i*4 + 4]
		pixel[0], pixel[1], pixel[2] = clr.R, clr.G, clr.B
		pixel[3] = uint8((uint32(value)*uint32(clr.A) + 127)/255)
	}
	return img
}

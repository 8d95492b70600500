package ocr

import (
	"image"

	"golang.org/x/image/draw"
)

// minRecognitionHeight is the image height, in pixels, below which
// Tesseract's accuracy degrades noticeably on body text
const minRecognitionHeight = 600

// Scale resamples an image by the given factor using Catmull-Rom
// interpolation. Factors of 1 or less than or equal to zero return the
// image unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}
	bounds := img.Bounds()
	w := int(float64(bounds.Dx()) * factor)
	h := int(float64(bounds.Dy()) * factor)
	if w < 1 || h < 1 {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// ScaleForRecognition upscales small images so that word shapes are
// large enough for reliable recognition. Images at or above the minimum
// height are returned unchanged.
func ScaleForRecognition(img image.Image) image.Image {
	h := img.Bounds().Dy()
	if h >= minRecognitionHeight || h == 0 {
		return img
	}
	return Scale(img, float64(minRecognitionHeight)/float64(h))
}

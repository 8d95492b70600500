package ocr

import (
	"image"
	"image/color"
	"testing"
)

func TestScale_Upscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			src.Set(x, y, color.Gray{Y: uint8(x)})
		}
	}

	dst := Scale(src, 2)
	if dst.Bounds().Dx() != 200 || dst.Bounds().Dy() != 80 {
		t.Errorf("Expected 200x80, got %v", dst.Bounds())
	}
}

func TestScale_IdentityFactor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if dst := Scale(src, 1); dst != src {
		t.Error("Expected factor 1 to return the source image")
	}
	if dst := Scale(src, 0); dst != src {
		t.Error("Expected factor 0 to return the source image")
	}
}

func TestScaleForRecognition(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 400, 300))
	scaled := ScaleForRecognition(small)
	if scaled.Bounds().Dy() != minRecognitionHeight {
		t.Errorf("Expected height %d, got %d", minRecognitionHeight, scaled.Bounds().Dy())
	}

	large := image.NewRGBA(image.Rect(0, 0, 400, 900))
	if got := ScaleForRecognition(large); got != large {
		t.Error("Expected large image to be returned unchanged")
	}
}

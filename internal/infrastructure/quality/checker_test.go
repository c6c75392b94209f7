package quality

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

func uniformImage(w, h int, gray uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c := color.RGBA{R: gray, G: gray, B: gray, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func checkerboardImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}

func TestCheckAcceptsContrastyImage(t *testing.T) {
	checker := NewChecker(Config{})
	buf := encodePNG(t, checkerboardImage(800, 600))

	report, err := checker.Check(context.Background(), "image/png", buf)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !report.Acceptable {
		t.Fatalf("expected acceptable, got warnings %v", report.Warnings)
	}
	if report.Width != 800 || report.Height != 600 {
		t.Fatalf("unexpected dimensions %dx%d", report.Width, report.Height)
	}
}

func TestCheckFlagsDarkImage(t *testing.T) {
	checker := NewChecker(Config{})
	buf := encodePNG(t, uniformImage(800, 600, 10))

	report, err := checker.Check(context.Background(), "image/png", buf)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if report.Acceptable {
		t.Fatalf("expected rejection")
	}
	if !hasWarning(report.Warnings, "too dark") {
		t.Fatalf("expected darkness warning, got %v", report.Warnings)
	}
	if !hasWarning(report.Warnings, "low contrast") {
		t.Fatalf("expected contrast warning, got %v", report.Warnings)
	}
}

func TestCheckFlagsOverexposedImage(t *testing.T) {
	checker := NewChecker(Config{})
	buf := encodePNG(t, uniformImage(800, 600, 250))

	report, err := checker.Check(context.Background(), "image/png", buf)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !hasWarning(report.Warnings, "overexposed") {
		t.Fatalf("expected overexposure warning, got %v", report.Warnings)
	}
}

func TestCheckFlagsLowResolution(t *testing.T) {
	checker := NewChecker(Config{})
	buf := encodePNG(t, checkerboardImage(100, 80))

	report, err := checker.Check(context.Background(), "image/png", buf)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !hasWarning(report.Warnings, "resolution") {
		t.Fatalf("expected resolution warning, got %v", report.Warnings)
	}
}

func TestCheckRejectsUndecodableData(t *testing.T) {
	checker := NewChecker(Config{})

	_, err := checker.Check(context.Background(), "image/png", strings.NewReader("not an image"))
	if err == nil {
		t.Fatalf("expected decode error")
	}
}

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

// Package quality screens uploaded images before they are accepted for
// OCR. Low-resolution, too-dark or washed-out scans recognize badly
// enough that rejecting them up front beats extracting garbage.
package quality

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/karimbakr/docufield/internal/core/domain"
)

type Config struct {
	MinWidth      int
	MinHeight     int
	MinBrightness float64
	MaxBrightness float64
	MinContrast   float64
}

func DefaultConfig() Config {
	return Config{
		MinWidth:      600,
		MinHeight:     400,
		MinBrightness: 40,
		MaxBrightness: 220,
		MinContrast:   20,
	}
}

type Checker struct {
	cfg Config
}

func NewChecker(cfg Config) *Checker {
	def := DefaultConfig()
	if cfg.MinWidth <= 0 {
		cfg.MinWidth = def.MinWidth
	}
	if cfg.MinHeight <= 0 {
		cfg.MinHeight = def.MinHeight
	}
	if cfg.MinBrightness <= 0 {
		cfg.MinBrightness = def.MinBrightness
	}
	if cfg.MaxBrightness <= 0 {
		cfg.MaxBrightness = def.MaxBrightness
	}
	if cfg.MinContrast <= 0 {
		cfg.MinContrast = def.MinContrast
	}
	return &Checker{cfg: cfg}
}

func (c *Checker) Check(_ context.Context, _ string, data io.Reader) (domain.QualityReport, error) {
	img, _, err := image.Decode(data)
	if err != nil {
		return domain.QualityReport{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	brightness, contrast := lumaStats(img)

	report := domain.QualityReport{
		Width:      width,
		Height:     height,
		Brightness: brightness,
		Contrast:   contrast,
	}

	if width < c.cfg.MinWidth || height < c.cfg.MinHeight {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("resolution %dx%d below minimum %dx%d", width, height, c.cfg.MinWidth, c.cfg.MinHeight))
	}
	if brightness < c.cfg.MinBrightness {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("image too dark (brightness %.1f)", brightness))
	}
	if brightness > c.cfg.MaxBrightness {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("image overexposed (brightness %.1f)", brightness))
	}
	if contrast < c.cfg.MinContrast {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("low contrast (%.1f)", contrast))
	}

	report.Acceptable = len(report.Warnings) == 0
	return report, nil
}

// lumaStats computes mean and standard deviation of the 0-255 luma
// channel. Large images are sampled on a stride to bound the cost.
func lumaStats(img image.Image) (mean, stddev float64) {
	bounds := img.Bounds()
	stride := 1
	if pixels := bounds.Dx() * bounds.Dy(); pixels > 1_000_000 {
		stride = int(math.Sqrt(float64(pixels) / 1_000_000))
	}

	var sum, sumSq float64
	var count int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			r, g, b, _ := img.At(x, y).RGBA()
			luma := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257.0
			sum += luma
			sumSq += luma * luma
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	mean = sum / float64(count)
	variance := sumSq/float64(count) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

package gochart

import "math"

// Reference canvas that layouts are designed against.
const (
	ReferenceWidth  = 1280
	ReferenceHeight = 720
)

// EMU (English Metric Units) conversion helpers for placing charts on slides.
// 1 inch = 914400 EMU, 1 point = 12700 EMU, 1 px at 96 DPI = 9525 EMU.

const (
	emuPerInch  = 914400
	emuPerPoint = 12700
	emuPerPixel = 9525
	// maxEMU is the maximum safe EMU value to prevent overflow.
	maxEMU = math.MaxInt64 / 2
)

// Scaler multiplies reference measurements by one factor.
type Scaler float64

// Scale returns the factor that fits the reference canvas into width x height
// while keeping its proportions. Non-positive sizes give 0.
func Scale(width, height float64) Scaler {
	if width <= 0 || height <= 0 {
		return 0
	}
	return Scaler(math.Min(width/ReferenceWidth, height/ReferenceHeight))
}

// Px scales a reference measurement.
func (s Scaler) Px(v float64) float64 {
	return v * float64(s)
}

// ReferenceLayout holds the literal measurements of a layout at 1280x720.
type ReferenceLayout struct {
	Padding  float64 `json:"padding" yaml:"padding"`
	FontSize float64 `json:"fontSize" yaml:"fontSize"`
	Gap      float64 `json:"gap" yaml:"gap"`
}

// DefaultReferenceLayout is the chart slot of a 16:9 slide.
func DefaultReferenceLayout() ReferenceLayout {
	return ReferenceLayout{Padding: 48, FontSize: 24, Gap: 16}
}

// Scaled returns the layout with every measurement multiplied by s.
func (l ReferenceLayout) Scaled(s Scaler) ReferenceLayout {
	return ReferenceLayout{
		Padding:  s.Px(l.Padding),
		FontSize: s.Px(l.FontSize),
		Gap:      s.Px(l.Gap),
	}
}

// PixelToEMU converts 96 DPI pixels to EMU. Clamps to safe range.
func PixelToEMU(px float64) int64 {
	return clampEMU(px * emuPerPixel)
}

// InchToEMU converts inches to EMU.
func InchToEMU(n float64) int64 {
	return clampEMU(n * emuPerInch)
}

// PointToEMU converts points to EMU.
func PointToEMU(n float64) int64 {
	return clampEMU(n * emuPerPoint)
}

// EMUToPixel converts EMU to 96 DPI pixels.
func EMUToPixel(emu int64) float64 {
	return float64(emu) / emuPerPixel
}

// EMUToPoint converts EMU to points.
func EMUToPoint(emu int64) float64 {
	return float64(emu) / emuPerPoint
}

// PixelToPoint converts 96 DPI pixels to points.
func PixelToPoint(px float64) float64 {
	return px * 72 / 96
}

// clampEMU converts a float64 to int64, clamping to prevent overflow.
func clampEMU(v float64) int64 {
	if v > float64(maxEMU) {
		return maxEMU
	}
	if v < -float64(maxEMU) {
		return -maxEMU
	}
	return int64(math.Round(v))
}

package raster

import (
	"math"

	"quat-renderer/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters in view space.
type LightConfig struct {
	LightDir mathutil.Vec3
	RimDir   mathutil.Vec3
	HalfMain mathutil.Vec3 // Blinn-Phong half-vector
	Ambient  float64
	Hemi     float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns a key light from the upper right and a cool
// rim light from behind on the left.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{180, 260, 140}.Normalize()
	rimDir := mathutil.Vec3{-160, 130, -210}.Normalize()
	viewDir := mathutil.Vec3{0, -110, -400}.Normalize()

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		HalfMain: lightDir.Sub(viewDir).Normalize(),
		Ambient:  0.35,
		Hemi:     0.40,
		Direct:   1.20,
		Rim:      0.45,
		SpecInt:  0.35,
		SpecPow:  12.0,
		Exposure: 1.0,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
// Lambert terms use |n·l| so both sides of a face are lit.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	ndlMain := math.Abs(normal.Dot(lc.LightDir))
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	hemi := (1.0-math.Abs(normal[1]))*0.5 + 0.5

	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemi*lc.Hemi + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Shade maps an sRGB texel through linear-space lighting, ACES tone
// mapping and back to sRGB.
func (lc *LightConfig) Shade(r, g, b uint8, shade float64) (uint8, uint8, uint8) {
	k := shade * lc.Exposure
	out := func(c uint8) uint8 {
		return clamp255(math.Pow(ACESTonemap(srgbToLinear[c]*k), lc.InvGamma) * 255)
	}
	return out(r), out(g), out(b)
}

var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

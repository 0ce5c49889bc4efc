package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"quat-renderer/internal/anim"
	"quat-renderer/internal/mathutil"
)

// Config holds the animation definition and render settings.
type Config struct {
	OutputDir string `json:"output_dir"`
	Texture   string `json:"texture"`

	// Render settings
	Frames      int     `json:"frames"`
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	Format      string  `json:"format"` // "webp" (lossless) or "tga"
	Workers     int     `json:"workers"`
	CubeSize    float64 `json:"cube_size"`

	Keyframes []Keyframe `json:"keyframes"`
}

// Keyframe is one rotation in the config file. Exactly one of Euler
// (degrees) or AxisAngle (radians, length is the angle) must be set.
type Keyframe struct {
	Time      float64     `json:"time"`
	Euler     *[3]float64 `json:"euler,omitempty"`
	AxisAngle *[3]float64 `json:"axis_angle,omitempty"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Texture   string
	Frames    int
	Size      int
	Workers   int
	Format    string
}

// Resolve applies CLI overrides, then fills any empty field with its default.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Frames <= 0 {
		c.Frames = 48
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.CubeSize <= 0 {
		c.CubeSize = 1
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = "webp"
	}
	if len(c.Keyframes) == 0 {
		c.Keyframes = DefaultKeyframes()
	}
}

// DefaultKeyframes spins from rest to 90° about Z, then to 180° about X.
func DefaultKeyframes() []Keyframe {
	return []Keyframe{
		{Time: 0, Euler: &[3]float64{0, 0, 0}},
		{Time: 0.5, Euler: &[3]float64{0, 0, 90}},
		{Time: 1, Euler: &[3]float64{180, 0, 0}},
	}
}

// Validate checks a resolved config.
func (c *Config) Validate() error {
	switch c.Format {
	case "webp", "tga":
	default:
		return fmt.Errorf("config: unknown format %q (want webp or tga)", c.Format)
	}
	for i, k := range c.Keyframes {
		if (k.Euler == nil) == (k.AxisAngle == nil) {
			return fmt.Errorf("config: keyframe %d: set exactly one of euler or axis_angle", i)
		}
		if i > 0 && k.Time <= c.Keyframes[i-1].Time {
			return fmt.Errorf("config: keyframe %d: time %g not after %g", i, k.Time, c.Keyframes[i-1].Time)
		}
	}
	return nil
}

// Rotation converts the keyframe to a quaternion.
func (k Keyframe) Rotation() mathutil.Quat {
	if k.Euler != nil {
		e := *k.Euler
		return mathutil.EulerToQuat(mathutil.Deg2Rad(e[0]), mathutil.Deg2Rad(e[1]), mathutil.Deg2Rad(e[2]))
	}
	if k.AxisAngle != nil {
		return mathutil.AxisAngleToQuat(mathutil.Vec3(*k.AxisAngle))
	}
	return mathutil.Identity
}

// Track builds the SLERP track described by the keyframes.
func (c *Config) Track() (*anim.Track, error) {
	keys := make([]anim.Keyframe, len(c.Keyframes))
	for i, k := range c.Keyframes {
		keys[i] = anim.Keyframe{Time: k.Time, Rotation: k.Rotation()}
	}
	tr, err := anim.NewTrack(keys)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return tr, nil
}

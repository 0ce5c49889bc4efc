package batch

import (
	"encoding/json"
	"os"

	"quat-renderer/internal/mathutil"
)

// ManifestEntry describes one rendered frame and its pose in every representation.
type ManifestEntry struct {
	Frame      int        `json:"frame"`
	Image      string     `json:"image"`
	Quaternion [4]float64 `json:"quaternion"` // w, x, y, z
	EulerDeg   [3]float64 `json:"euler_deg"`
	AxisAngle  [3]float64 `json:"axis_angle"`
	StepDeg    float64    `json:"step_deg"` // rotation from the previous frame
}

// BuildManifest describes poses rendered with the given format.
func BuildManifest(poses []mathutil.Quat, format string) []ManifestEntry {
	entries := make([]ManifestEntry, len(poses))
	for i, q := range poses {
		x, y, z := mathutil.QuatToEuler(q)
		e := ManifestEntry{
			Frame:      i,
			Image:      FrameName(i, format),
			Quaternion: q,
			EulerDeg:   [3]float64{mathutil.Rad2Deg(x), mathutil.Rad2Deg(y), mathutil.Rad2Deg(z)},
			AxisAngle:  mathutil.QuatToAxisAngle(q),
		}
		if i > 0 {
			e.StepDeg = mathutil.Rad2Deg(mathutil.Angle(poses[i-1], q))
		}
		entries[i] = e
	}
	return entries
}

// WriteManifest writes manifest.json for the rendered frames.
func WriteManifest(path string, poses []mathutil.Quat, format string) error {
	data, err := json.MarshalIndent(BuildManifest(poses, format), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

package randomizer

import (
	"fmt"
	"math"

	"github.com/dartsight/dart-scene-gen/internal/geom"
)

// RollMode selects the camera roll strategy.
type RollMode int

const (
	// RollTwentyExactUp keeps the "20" wedge exactly up in frame.
	RollTwentyExactUp RollMode = iota + 1
	// RollTwentyApproxUp keeps the "20" approximately up with a small
	// gaussian jitter, like a hand-mounted camera.
	RollTwentyApproxUp
	// RollLevelHorizon keeps the horizon level (no roll).
	RollLevelHorizon
	// RollRandom applies a uniform random roll.
	RollRandom
)

// CameraConfig holds the camera sampling parameters. Angles are in
// degrees, distances in meters, optics in millimeters.
type CameraConfig struct {
	FocalLengthMin float64
	FocalLengthMax float64
	SensorWidthMin float64
	SensorWidthMax float64

	// Distance factors applied on top of the computed minimum framing
	// distance.
	DistanceFactorMin float64
	DistanceFactorMax float64

	// Spherical shell the camera is placed on, measured from the
	// board normal (+Z).
	PolarAngleMinDeg float64
	PolarAngleMaxDeg float64
	AzimuthMinDeg    float64
	AzimuthMaxDeg    float64

	// Gaussian jitter of the look-at target around the bullseye,
	// simulating imperfect aiming.
	LookJitterStdDev float64

	Roll          RollMode
	RollStdDevDeg float64
	RollMinDeg    float64
	RollMaxDeg    float64

	BoardDiameterM   float64
	FocusRadiusMaxM  float64
	ApertureFStopMin float64
	ApertureFStopMax float64
}

// DefaultCameraConfig returns the stock camera sampling ranges.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		FocalLengthMin:    20.0,
		FocalLengthMax:    60.0,
		SensorWidthMin:    8.0,
		SensorWidthMax:    36.0,
		DistanceFactorMin: 1.0,
		DistanceFactorMax: 2.0,
		PolarAngleMinDeg:  0.0,
		PolarAngleMaxDeg:  75.0,
		AzimuthMinDeg:     0.0,
		AzimuthMaxDeg:     360.0,
		LookJitterStdDev:  0.02,
		Roll:              RollTwentyExactUp,
		RollStdDevDeg:     6.0,
		RollMinDeg:        -180.0,
		RollMaxDeg:        180.0,
		BoardDiameterM:    0.44,
		FocusRadiusMaxM:   0.225,
		ApertureFStopMin:  0.8,
		ApertureFStopMax:  5.6,
	}
}

// CameraPose is one sampled camera state, ready for the host to apply.
type CameraPose struct {
	FocalLength   float64    `json:"focal_length"` // mm
	SensorWidth   float64    `json:"sensor_width"` // mm
	SensorHeight  float64    `json:"sensor_height"`
	Location      geom.Vec3  `json:"location"`       // meters, world space
	RotationEuler [3]float64 `json:"rotation_euler"` // radians, XYZ order
	FocusDistance float64    `json:"focus_distance"` // meters
	ApertureFStop float64    `json:"aperture_fstop"`
}

// CameraRandomizer samples camera optics, pose and depth of field.
type CameraRandomizer struct {
	seeded
	Config CameraConfig
}

// NewCameraRandomizer constructs a camera randomizer with its own RNG.
func NewCameraRandomizer(seed int64, cfg CameraConfig) *CameraRandomizer {
	return &CameraRandomizer{seeded: newSeeded(seed), Config: cfg}
}

// Randomize samples a full camera pose. renderAspect is the render
// width/height ratio used to derive the sensor height.
func (c *CameraRandomizer) Randomize(renderAspect float64) (*CameraPose, error) {
	if renderAspect <= 0 {
		return nil, fmt.Errorf("render aspect must be > 0, got %v", renderAspect)
	}

	cfg := c.Config
	pose := &CameraPose{}

	// Optics first: the minimum distance depends on them.
	pose.FocalLength = c.uniform(cfg.FocalLengthMin, cfg.FocalLengthMax)
	pose.SensorWidth = c.uniform(cfg.SensorWidthMin, cfg.SensorWidthMax)
	pose.SensorHeight = pose.SensorWidth / renderAspect
	if pose.SensorWidth <= 0 || pose.SensorHeight <= 0 {
		return nil, fmt.Errorf("sensor dimensions must be > 0, got %vx%v", pose.SensorWidth, pose.SensorHeight)
	}

	// Jittered aim point around the bullseye.
	target := geom.Vec3{
		X: c.rng.NormFloat64() * cfg.LookJitterStdDev,
		Y: c.rng.NormFloat64() * cfg.LookJitterStdDev,
	}

	minDistance := c.minFramingDistance(pose, target)

	// Place the camera on a spherical shell and aim it.
	r := minDistance * c.uniform(cfg.DistanceFactorMin, cfg.DistanceFactorMax)
	theta := radians(c.uniform(cfg.PolarAngleMinDeg, cfg.PolarAngleMaxDeg))
	phi := radians(c.uniform(cfg.AzimuthMinDeg, cfg.AzimuthMaxDeg))
	pose.Location = geom.SphToCart(r, theta, phi)

	up := c.upVector()
	rot := geom.LookAt(pose.Location, target, up)
	x, y, z := geom.EulerXYZ(rot)
	pose.RotationEuler = [3]float64{x, y, z}

	// Depth of field: focus on a random point in the board plane.
	focusR := c.uniform(0, cfg.FocusRadiusMaxM)
	focusPhi := radians(c.uniform(0, 360))
	focusPoint := geom.CylToCart(focusR, focusPhi, 0)
	pose.FocusDistance = pose.Location.Sub(focusPoint).Norm()
	pose.ApertureFStop = c.uniform(cfg.ApertureFStopMin, cfg.ApertureFStopMax)

	return pose, nil
}

// minFramingDistance computes the closest distance at which the whole
// board (plus aim offset) still fits on the sensor's shorter side.
func (c *CameraRandomizer) minFramingDistance(pose *CameraPose, target geom.Vec3) float64 {
	shorter := math.Min(pose.SensorWidth, pose.SensorHeight)
	return (c.Config.BoardDiameterM + target.Norm()) * pose.FocalLength / shorter
}

// upVector picks the camera up hint for the configured roll mode. The
// board hangs with the "20" wedge on world +Y.
func (c *CameraRandomizer) upVector() geom.Vec3 {
	cfg := c.Config
	switch cfg.Roll {
	case RollLevelHorizon:
		return geom.Vec3{Z: 1}
	case RollTwentyExactUp:
		return geom.Vec3{Y: 1}
	case RollTwentyApproxUp:
		jitter := c.rng.NormFloat64() * cfg.RollStdDevDeg
		return geom.RotateZ(geom.Vec3{Y: 1}, radians(jitter))
	case RollRandom:
		roll := c.uniform(cfg.RollMinDeg, cfg.RollMaxDeg)
		return geom.RotateZ(geom.Vec3{Y: 1}, radians(roll))
	default:
		return geom.Vec3{Z: 1}
	}
}

func (c *CameraRandomizer) uniform(min, max float64) float64 {
	return min + c.rng.Float64()*(max-min)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

package randomizer

import (
	"fmt"

	"github.com/dartsight/dart-scene-gen/internal/board"
)

// Component tags used for sub-seed derivation. Changing a tag changes
// every frame sampled for that component.
const (
	tagCamera     = "camera"
	tagDart       = "dart"
	tagThrow      = "throw"
	tagAppearance = "board"
	tagEnv        = "env"
)

// ManagerConfig bundles the per-component configurations.
type ManagerConfig struct {
	TipRadiusMM  float64 // dart tip radius handed to the board layout
	RenderAspect float64 // render width/height, for the sensor height

	Camera     CameraConfig
	Dart       DartConfig
	Throw      ThrowConfig
	Appearance AppearanceConfig
	Env        EnvConfig
}

// DefaultManagerConfig returns the stock configuration for every
// component.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		TipRadiusMM:  board.DefaultTipRadius,
		RenderAspect: 1.0,
		Camera:       DefaultCameraConfig(),
		Dart:         DefaultDartConfig(),
		Throw:        DefaultThrowConfig(),
		Appearance:   DefaultAppearanceConfig(),
		Env:          DefaultEnvConfig(),
	}
}

// FrameSample is everything sampled for one frame.
type FrameSample struct {
	Frame      int         `json:"frame"`
	Camera     *CameraPose `json:"camera"`
	Darts      []Placement `json:"darts"`
	Appearance Appearance  `json:"appearance"`
	Env        EnvParams   `json:"env"`
}

// VisibleScore sums the scores of all visible darts.
func (f *FrameSample) VisibleScore() int {
	total := 0
	for _, d := range f.Darts {
		if !d.Hidden {
			total += d.Field.Score
		}
	}
	return total
}

// Manager owns all randomizers and drives them frame by frame. All
// randomizers are constructed once; per frame only seeds are updated,
// so asset-heavy initialization never repeats. A Manager is not safe
// for concurrent use; run one per worker.
type Manager struct {
	globalSeed int64
	config     ManagerConfig

	Layout     *board.Layout
	Camera     *CameraRandomizer
	Dart       *DartRandomizer
	Throw      *ThrowRandomizer
	Appearance *AppearanceRandomizer
	Env        *EnvRandomizer
}

// NewManager constructs all randomizers with initial sub-seeds derived
// from the global seed.
func NewManager(globalSeed int64, cfg ManagerConfig) *Manager {
	layout := board.New(cfg.TipRadiusMM)
	dart := NewDartRandomizer(SubSeed(globalSeed, tagDart, 0), cfg.Dart)

	return &Manager{
		globalSeed: globalSeed,
		config:     cfg,
		Layout:     layout,
		Camera:     NewCameraRandomizer(SubSeed(globalSeed, tagCamera, 0), cfg.Camera),
		Dart:       dart,
		Throw:      NewThrowRandomizer(SubSeed(globalSeed, tagThrow, 0), cfg.Throw, layout, dart),
		Appearance: NewAppearanceRandomizer(SubSeed(globalSeed, tagAppearance, 0), cfg.Appearance),
		Env:        NewEnvRandomizer(SubSeed(globalSeed, tagEnv, 0), cfg.Env),
	}
}

// GlobalSeed returns the seed the manager derives all sub-seeds from.
func (m *Manager) GlobalSeed() int64 {
	return m.globalSeed
}

// Randomize produces the full sample for one frame. The same
// (global seed, frame) pair always yields the same sample.
func (m *Manager) Randomize(frame int) (*FrameSample, error) {
	m.Camera.UpdateSeed(SubSeed(m.globalSeed, tagCamera, frame))
	pose, err := m.Camera.Randomize(m.config.RenderAspect)
	if err != nil {
		return nil, fmt.Errorf("camera randomization for frame %d: %w", frame, err)
	}

	m.Appearance.UpdateSeed(SubSeed(m.globalSeed, tagAppearance, frame))
	appearance := m.Appearance.Randomize()

	m.Env.UpdateSeed(SubSeed(m.globalSeed, tagEnv, frame))
	env := m.Env.Randomize()

	m.Throw.UpdateSeed(SubSeed(m.globalSeed, tagThrow, frame))
	darts := m.Throw.Randomize()

	return &FrameSample{
		Frame:      frame,
		Camera:     pose,
		Darts:      darts,
		Appearance: appearance,
		Env:        env,
	}, nil
}

package randomizer

import "math"

// EnvConfig controls environment lighting randomization. The HDRIs
// themselves are the host's assets; this component only picks one and
// samples its strength and rotation.
type EnvConfig struct {
	// HDRICount is the number of environment maps available to the
	// host. Zero disables selection (index stays 0).
	HDRICount int

	StrengthMin float64
	StrengthMax float64
	RotationMin float64 // radians around world Z
	RotationMax float64
}

// DefaultEnvConfig returns the stock environment ranges.
func DefaultEnvConfig() EnvConfig {
	return EnvConfig{
		HDRICount:   0,
		StrengthMin: 0.2,
		StrengthMax: 1.5,
		RotationMin: 0.0,
		RotationMax: 2 * math.Pi,
	}
}

// EnvParams is one sampled environment state.
type EnvParams struct {
	HDRIIndex int     `json:"hdri_index"`
	Strength  float64 `json:"strength"`
	RotationZ float64 `json:"rotation_z"` // radians
}

// EnvRandomizer samples environment lighting parameters.
type EnvRandomizer struct {
	seeded
	Config EnvConfig
}

// NewEnvRandomizer constructs an environment randomizer with its own
// RNG.
func NewEnvRandomizer(seed int64, cfg EnvConfig) *EnvRandomizer {
	return &EnvRandomizer{seeded: newSeeded(seed), Config: cfg}
}

// Randomize samples one environment state.
func (e *EnvRandomizer) Randomize() EnvParams {
	cfg := e.Config
	p := EnvParams{}

	if cfg.HDRICount > 0 {
		p.HDRIIndex = e.rng.Intn(cfg.HDRICount)
	}
	p.Strength = cfg.StrengthMin + e.rng.Float64()*(cfg.StrengthMax-cfg.StrengthMin)
	p.RotationZ = cfg.RotationMin + e.rng.Float64()*(cfg.RotationMax-cfg.RotationMin)

	return p
}

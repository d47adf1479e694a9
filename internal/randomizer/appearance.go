package randomizer

import "github.com/dartsight/dart-scene-gen/internal/colorutil"

// AppearanceConfig controls board material randomization: the painted
// field colors, the crack/hole texture factors and the digit wear of
// the number ring.
type AppearanceConfig struct {
	RandomizeCracks bool
	RandomizeHoles  bool
	RandomizeWear   bool

	CrackFactor  RangeOrFixed
	HoleFactor   RangeOrFixed
	WearLevel    RangeOrFixed
	WearContrast RangeOrFixed

	FieldRed   ColorVariation
	FieldGreen ColorVariation
	FieldWhite ColorVariation
	FieldBlack ColorVariation
	DigitColor ColorVariation
}

// DefaultAppearanceConfig returns the stock board appearance ranges.
func DefaultAppearanceConfig() AppearanceConfig {
	return AppearanceConfig{
		RandomizeCracks: false,
		RandomizeHoles:  true,
		RandomizeWear:   true,
		CrackFactor:     Range(0.0, 1.0),
		HoleFactor:      Range(0.0, 1.0),
		WearLevel:       Range(0.0, 1.0),
		WearContrast:    Range(0.5, 1.0),
		FieldRed: ColorVariation{
			Base:      colorutil.RGBA{R: 0.8, G: 0.1, B: 0.1, A: 1.0},
			HueVar:    0.02,
			SatVar:    0.1,
			ValVar:    0.15,
			Randomize: true,
		},
		FieldGreen: ColorVariation{
			Base:      colorutil.RGBA{R: 0.1, G: 0.5, B: 0.1, A: 1.0},
			HueVar:    0.02,
			SatVar:    0.1,
			ValVar:    0.15,
			Randomize: true,
		},
		FieldWhite: ColorVariation{
			Base:      colorutil.RGBA{R: 0.9, G: 0.9, B: 0.85, A: 1.0},
			SatVar:    0.05,
			ValVar:    0.1,
			Randomize: true,
		},
		FieldBlack: ColorVariation{
			Base:      colorutil.RGBA{R: 0.02, G: 0.02, B: 0.02, A: 1.0},
			ValVar:    0.02,
			Randomize: true,
		},
		DigitColor: ColorVariation{
			Base:      colorutil.RGBA{R: 0.9, G: 0.9, B: 0.9, A: 1.0},
			ValVar:    0.1,
			Randomize: true,
		},
	}
}

// Appearance is one sampled board look. Texture factors are nil when
// their randomization is disabled, meaning the host keeps its current
// value.
type Appearance struct {
	// TextureSeed is shared by all four score materials so the crack
	// and hole patterns line up across the painted fields.
	TextureSeed int      `json:"texture_seed"`
	CrackFactor *float64 `json:"crack_factor,omitempty"`
	HoleFactor  *float64 `json:"hole_factor,omitempty"`

	FieldRed   colorutil.RGBA `json:"field_red"`
	FieldGreen colorutil.RGBA `json:"field_green"`
	FieldWhite colorutil.RGBA `json:"field_white"`
	FieldBlack colorutil.RGBA `json:"field_black"`

	DigitSeed    int            `json:"digit_seed"`
	WearLevel    *float64       `json:"wear_level,omitempty"`
	WearContrast *float64       `json:"wear_contrast,omitempty"`
	DigitColor   colorutil.RGBA `json:"digit_color"`

	// WireSeed drives the host's wire geometry nodes; shared so every
	// wire modifier produces a consistent look.
	WireSeed int `json:"wire_seed"`
}

// AppearanceRandomizer samples the board's material parameters.
type AppearanceRandomizer struct {
	seeded
	Config AppearanceConfig
}

// NewAppearanceRandomizer constructs an appearance randomizer with its
// own RNG.
func NewAppearanceRandomizer(seed int64, cfg AppearanceConfig) *AppearanceRandomizer {
	return &AppearanceRandomizer{seeded: newSeeded(seed), Config: cfg}
}

// Randomize samples one board appearance.
func (a *AppearanceRandomizer) Randomize() Appearance {
	cfg := a.Config
	app := Appearance{}

	app.TextureSeed = a.intSeed()
	if cfg.RandomizeCracks {
		v := cfg.CrackFactor.Value(a.rng)
		app.CrackFactor = &v
	}
	if cfg.RandomizeHoles {
		v := cfg.HoleFactor.Value(a.rng)
		app.HoleFactor = &v
	}

	app.FieldRed = cfg.FieldRed.Sample(a.rng)
	app.FieldGreen = cfg.FieldGreen.Sample(a.rng)
	app.FieldWhite = cfg.FieldWhite.Sample(a.rng)
	app.FieldBlack = cfg.FieldBlack.Sample(a.rng)

	app.DigitSeed = a.intSeed()
	if cfg.RandomizeWear {
		level := cfg.WearLevel.Value(a.rng)
		contrast := cfg.WearContrast.Value(a.rng)
		app.WearLevel = &level
		app.WearContrast = &contrast
	}
	app.DigitColor = cfg.DigitColor.Sample(a.rng)

	app.WireSeed = a.intSeed()

	return app
}

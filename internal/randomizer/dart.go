package randomizer

// DartConfig holds the sampling ranges for procedural dart geometry.
// Lengths are in millimeters, matching the host's generator inputs.
type DartConfig struct {
	TipLength       RangeOrFixed
	BarrelLength    RangeOrFixed
	BarrelThickness RangeOrFixed
	ShaftLength     RangeOrFixed
	ShaftShapeMix   RangeOrFixed
	FlightDepth     RangeOrFixed

	// Flight selection among the host's instanced flight meshes.
	RandomizeFlightType bool
	FixedFlightIndex    int
	FlightTypeCount     int
}

// DefaultDartConfig returns the stock dart geometry ranges.
func DefaultDartConfig() DartConfig {
	return DartConfig{
		TipLength:           Range(20.0, 45.0),
		BarrelLength:        Range(40.0, 55.0),
		BarrelThickness:     Range(0.15, 2.2),
		ShaftLength:         Range(26.0, 56.0),
		ShaftShapeMix:       Range(0.0, 1.0),
		FlightDepth:         Range(10.0, 20.0),
		RandomizeFlightType: true,
		FixedFlightIndex:    0,
		FlightTypeCount:     105,
	}
}

// DartParams is one sampled dart geometry. The host feeds these into
// its tip/barrel/shaft/flight generators.
type DartParams struct {
	TipLength       float64 `json:"tip_length"` // mm
	TipSeed         int     `json:"tip_seed"`
	BarrelLength    float64 `json:"barrel_length"` // mm
	BarrelThickness float64 `json:"barrel_thickness"`
	BarrelSeed      int     `json:"barrel_seed"`
	ShaftLength     float64 `json:"shaft_length"` // mm
	ShaftShapeMix   float64 `json:"shaft_shape_mix"`
	ShaftSeed       int     `json:"shaft_seed"`
	FlightDepth     float64 `json:"flight_depth"` // mm
	FlightIndex     int     `json:"flight_index"`
	FlightSeed      int     `json:"flight_seed"`
}

// TotalLength returns the dart's nominal length in millimeters. The
// flight sits on the shaft, recessed by its insertion depth.
func (p DartParams) TotalLength() float64 {
	return p.TipLength + p.BarrelLength + p.ShaftLength - p.FlightDepth
}

// DartRandomizer samples procedural dart geometry parameters.
type DartRandomizer struct {
	seeded
	Config DartConfig
}

// NewDartRandomizer constructs a dart randomizer with its own RNG.
func NewDartRandomizer(seed int64, cfg DartConfig) *DartRandomizer {
	return &DartRandomizer{seeded: newSeeded(seed), Config: cfg}
}

// Randomize samples one dart's geometry parameters.
func (d *DartRandomizer) Randomize() DartParams {
	cfg := d.Config
	p := DartParams{}

	p.TipLength = cfg.TipLength.Value(d.rng)
	p.TipSeed = d.intSeed()

	p.BarrelLength = cfg.BarrelLength.Value(d.rng)
	p.BarrelThickness = cfg.BarrelThickness.Value(d.rng)
	p.BarrelSeed = d.intSeed()

	p.ShaftLength = cfg.ShaftLength.Value(d.rng)
	p.ShaftShapeMix = cfg.ShaftShapeMix.Value(d.rng)
	p.ShaftSeed = d.intSeed()

	p.FlightDepth = cfg.FlightDepth.Value(d.rng)
	if cfg.RandomizeFlightType {
		p.FlightIndex = d.rng.Intn(cfg.FlightTypeCount)
	} else {
		p.FlightIndex = cfg.FixedFlightIndex % cfg.FlightTypeCount
	}
	p.FlightSeed = d.intSeed()

	return p
}

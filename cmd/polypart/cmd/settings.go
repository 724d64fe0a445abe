package cmd

// Settings control how the polypart command processes a polygon set.
type Settings struct {
	// Algorithm selects the triangulation strategy: "ec" (ear clipping),
	// "mono" (monotone decomposition) or "opt" (minimal edge length).
	Algorithm string `yaml:"algorithm"`

	// RemoveHoles merges hole polygons into their enclosing outer polygon
	// before triangulating.
	RemoveHoles bool `yaml:"removeHoles"`

	// EnforceOrientation rewinds outer polygons counter-clockwise and holes
	// clockwise before processing.
	EnforceOrientation bool `yaml:"enforceOrientation"`

	// Decimal writes output coordinates as full doubles instead of
	// truncated integers.
	Decimal bool `yaml:"decimal"`
}

// NewSettings returns a new Settings struct filled with default values.
func NewSettings() Settings {
	return Settings{
		Algorithm:          "ec",
		RemoveHoles:        true,
		EnforceOrientation: true,
		Decimal:            false,
	}
}

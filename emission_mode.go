package emitter

type EmissionKind uint8

const (
	// ModeRandom places particles anywhere in the shape. It is the zero value.
	ModeRandom EmissionKind = iota
	// ModeSpread walks particles across the shape in discrete steps.
	ModeSpread
)

func (k EmissionKind) String() string {
	switch k {
	case ModeRandom:
		return "random"
	case ModeSpread:
		return "spread"
	}
	return "unknown"
}

// EmissionMode selects random or spread emission. The spread settings and
// progress only matter while Kind is ModeSpread.
type EmissionMode struct {
	kind   EmissionKind
	spread EmissionSpread
}

func RandomEmission() EmissionMode {
	return EmissionMode{kind: ModeRandom}
}

// SpreadEmission builds a spread mode from cfg, always starting from a rewound index.
func SpreadEmission(cfg EmissionSpread) EmissionMode {
	cfg.Reset()
	return EmissionMode{kind: ModeSpread, spread: cfg}
}

func (m EmissionMode) Kind() EmissionKind {
	return m.kind
}

// Spread returns the live spread settings, or nil in random mode.
func (m *EmissionMode) Spread() *EmissionSpread {
	if m.kind != ModeSpread {
		return nil
	}
	return &m.spread
}

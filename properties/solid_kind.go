package properties

// SolidKind enumerates the fixed solid catalogue (spec §3 Material).
type SolidKind int

const (
	SS304L SolidKind = iota
	Copper
	Fiberglass
	PyrogelHPS
)

func (k SolidKind) String() string {
	switch k {
	case SS304L:
		return "SS304L"
	case Copper:
		return "Copper"
	case Fiberglass:
		return "Fiberglass"
	case PyrogelHPS:
		return "PyrogelHPS"
	default:
		return "UnknownSolid"
	}
}

var solidAllocators = map[SolidKind]func() Solid{
	SS304L:     func() Solid { return newSS304L() },
	Copper:     func() Solid { return newCopper() },
	Fiberglass: func() Solid { return newFiberglass() },
	PyrogelHPS: func() Solid { return newPyrogelHPS() },
}

// NewSolid allocates the property model for a catalogue solid kind.
func NewSolid(kind SolidKind) (Solid, error) {
	alloc, ok := solidAllocators[kind]
	if !ok {
		return nil, solidKindError(kind)
	}
	return alloc(), nil
}

// NewSolidMaterialFromKind is a convenience combining NewSolid and
// NewSolidMaterial.
func NewSolidMaterialFromKind(kind SolidKind) (Material, error) {
	s, err := NewSolid(kind)
	if err != nil {
		return Material{}, err
	}
	return NewSolidMaterial(s), nil
}

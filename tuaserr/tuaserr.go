// Package tuaserr defines the error taxonomy shared across the
// thermal-hydraulics solver (spec §7). Errors here are plain values
// returned through normal Go error-return discipline; nothing in this
// module panics on a recoverable condition. chk.Err from gosl builds the
// underlying formatted errors, matching the teacher's construction idiom
// (mconduct.Init, mporous.Init, ...).
package tuaserr

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Kind discriminates the taxonomy entries so callers can switch on cause
// without string matching.
type Kind int

const (
	// Linalg indicates the implicit-solve matrix was singular or
	// ill-shaped. Fatal for the current timestep.
	Linalg Kind = iota
	// CourantMassFlowVectorEmpty indicates a max-timestep request was
	// made before any flow was registered. Fatal; caller bug.
	CourantMassFlowVectorEmpty
	// ThermophysicalPropertyTemperatureRange indicates T fell outside a
	// material's declared validity window. Recoverable: the caller may
	// clamp T or widen a CustomSolid/CustomLiquid range.
	ThermophysicalPropertyTemperatureRange
	// TypeConversionHeatTransferEntity indicates a narrowing accessor was
	// called on the wrong HeatTransferEntity variant. Programmer error.
	TypeConversionHeatTransferEntity
	// TypeConversionMaterial indicates a narrowing accessor was called on
	// the wrong Material variant (Solid vs Liquid). Programmer error.
	TypeConversionMaterial
	// NotImplementedForBoundaryConditions indicates a BC-to-BC link was
	// attempted. Fatal.
	NotImplementedForBoundaryConditions
	// WrongHeatTransferInteractionType indicates e.g. an advection
	// interaction applied where a conductance was expected. Fatal.
	WrongHeatTransferInteractionType
	// GenericString is the catch-all for conditions not yet enumerated.
	GenericString
)

func (k Kind) String() string {
	switch k {
	case Linalg:
		return "LinalgError"
	case CourantMassFlowVectorEmpty:
		return "CourantMassFlowVectorEmpty"
	case ThermophysicalPropertyTemperatureRange:
		return "ThermophysicalPropertyTemperatureRangeError"
	case TypeConversionHeatTransferEntity:
		return "TypeConversionErrorHeatTransferEntity"
	case TypeConversionMaterial:
		return "TypeConversionErrorMaterial"
	case NotImplementedForBoundaryConditions:
		return "NotImplementedForBoundaryConditions"
	case WrongHeatTransferInteractionType:
		return "WrongHeatTransferInteractionType"
	default:
		return "GenericStringError"
	}
}

// Error is a taxonomy-tagged error. Use errors.As or the Kind accessor to
// recover the discriminant; Error() renders like gosl's chk.Err messages
// so diagnostics read consistently with the rest of the stack.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.msg) }

// New builds a tagged error, formatting msg/args with chk.Err's
// conventions (printf-style, trailing newline tolerated by callers).
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, msg: chk.Err(format, args...).Error()}
}

// Is reports whether err is a tagged Error of the given Kind.
func Is(err error, kind Kind) bool {
	te, ok := err.(*Error)
	return ok && te.Kind == kind
}

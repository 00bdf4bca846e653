// Package hte implements HeatTransferEntity (spec §4.6): the tagged
// union over SingleCVNode, FluidArray, SolidArray and BoundaryCondition,
// plus the polymorphic Link dispatcher that pushes power contributions
// onto whichever accumulator each kind exposes. The "many small structs
// behind one interface, dispatch by type switch" shape mirrors htc's
// Interaction union; HeatTransferEntity additionally narrows with
// TypeConversionHeatTransferEntity-tagged accessors (spec §7), grounded
// on the Rust original's type_conversion.rs tests.
package hte

import (
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/fluidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/scv"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/solidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
)

// Kind discriminates the Entity variants.
type Kind int

const (
	KindSingleCV Kind = iota
	KindFluidArray
	KindSolidArray
	KindBoundaryCondition
)

// Entity is the tagged union of spec §3 HeatTransferEntity.
type Entity struct {
	kind Kind
	scv  *scv.SingleCVNode
	fa   *fluidarray.FluidArray
	sa   *solidarray.SolidArray
	bc   BoundaryCondition
}

// FromSingleCV wraps an SCV as an Entity.
func FromSingleCV(c *scv.SingleCVNode) Entity { return Entity{kind: KindSingleCV, scv: c} }

// FromFluidArray wraps a FluidArray as an Entity.
func FromFluidArray(f *fluidarray.FluidArray) Entity { return Entity{kind: KindFluidArray, fa: f} }

// FromSolidArray wraps a SolidArray as an Entity.
func FromSolidArray(s *solidarray.SolidArray) Entity { return Entity{kind: KindSolidArray, sa: s} }

// FromBoundaryCondition wraps a BoundaryCondition as an Entity.
func FromBoundaryCondition(b BoundaryCondition) Entity {
	return Entity{kind: KindBoundaryCondition, bc: b}
}

// Kind reports the entity's discriminant.
func (e Entity) Kind() Kind { return e.kind }

// AsSingleCV narrows to the SingleCVNode variant.
func (e Entity) AsSingleCV() (*scv.SingleCVNode, error) {
	if e.kind != KindSingleCV {
		return nil, tuaserr.New(tuaserr.TypeConversionHeatTransferEntity, "Entity.AsSingleCV: entity is not a SingleCVNode")
	}
	return e.scv, nil
}

// AsFluidArray narrows to the FluidArray variant.
func (e Entity) AsFluidArray() (*fluidarray.FluidArray, error) {
	if e.kind != KindFluidArray {
		return nil, tuaserr.New(tuaserr.TypeConversionHeatTransferEntity, "Entity.AsFluidArray: entity is not a FluidArray")
	}
	return e.fa, nil
}

// AsSolidArray narrows to the SolidArray variant.
func (e Entity) AsSolidArray() (*solidarray.SolidArray, error) {
	if e.kind != KindSolidArray {
		return nil, tuaserr.New(tuaserr.TypeConversionHeatTransferEntity, "Entity.AsSolidArray: entity is not a SolidArray")
	}
	return e.sa, nil
}

// AsBoundaryCondition narrows to the BoundaryCondition variant.
func (e Entity) AsBoundaryCondition() (BoundaryCondition, error) {
	if e.kind != KindBoundaryCondition {
		return BoundaryCondition{}, tuaserr.New(tuaserr.TypeConversionHeatTransferEntity, "Entity.AsBoundaryCondition: entity is not a BoundaryCondition")
	}
	return e.bc, nil
}

package properties

import "github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"

func liquidKindError(kind LiquidKind) error {
	return tuaserr.New(tuaserr.GenericString, "properties: no allocator registered for liquid kind %v", kind)
}

func solidKindError(kind SolidKind) error {
	return tuaserr.New(tuaserr.GenericString, "properties: no allocator registered for solid kind %v", kind)
}

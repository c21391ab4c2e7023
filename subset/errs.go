package subset

import (
	"errors"

	"github.com/signadot/subset/index"
)

var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrInvalidKey       = errors.New("invalid key")
	ErrInvalidContainer = errors.New("invalid container")
	ErrRank             = errors.New("incorrect number of dimensions")
	ErrMixedSigns       = index.ErrMixedSigns

	// returned in strict mode in place of a missing Result
	ErrNotFound   = errors.New("not found")
	ErrAmbiguous  = errors.New("ambiguous partial match")
	ErrOutOfRange = errors.New("subscript out of bounds")
)

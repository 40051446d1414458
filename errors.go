package linearhash

import "errors"

// ErrInvalidCapacity is the panic payload used when a construction-time
// capacity is not positive and so cannot be rounded up to a power of
// two. Reserve does not use it: a non-positive request is a no-op.
var ErrInvalidCapacity = errors.New("linearhash: invalid capacity: must be a positive power of two")

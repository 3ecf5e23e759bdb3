package kernel

import "errors"

var errMismatchedLength = errors.New("dst and x must have same length")

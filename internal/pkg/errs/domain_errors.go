package errs

import "errors"

// Sentinel errors shared across layers
var ErrUnknownZoneLabel = errors.New("unknown shipping zone label")

package strategy

import "errors"

// ErrUnknownStrategy indicates that a strategy name is not recognized.
var ErrUnknownStrategy = errors.New("unknown zero-sum strategy")

package simulate

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = errors.New("invalid simulation config")
	ErrLoadConfig    = errors.New("load simulation config failed")
)

package browse

import "errors"

// Sentinel errors.
var (
	ErrNoRecords = errors.New("inventory has no records")
)

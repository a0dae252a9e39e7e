package deflate

import (
	"fmt"

	"github.com/klauspost/compress/flate"
)

// Compression level bounds. Level 0 stores the data without compression,
// 9 gives the best ratio at the highest CPU cost.
const (
	StoreLevel   = flate.NoCompression   // 0
	DefaultLevel = 6                     // balanced ratio and speed
	BestLevel    = flate.BestCompression // 9
)

// ValidateLevel checks that the level is within the range the DEFLATE
// encoder accepts for this codec.
func ValidateLevel(level int) error {
	if level < StoreLevel || level > BestLevel {
		return fmt.Errorf("compression level must be between %d and %d, got %d", StoreLevel, BestLevel, level)
	}
	return nil
}

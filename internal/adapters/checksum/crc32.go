// Package checksum provides running-checksum adapters for the streaming
// compression driver.
package checksum

import (
	"hash/crc32"

	"github.com/filepress-io/filepress/internal/core/ports"
)

// CRC32IEEE accumulates the CRC32 checksum with the IEEE polynomial, the
// algorithm the GZIP trailer mandates for its CRC32 field.
type CRC32IEEE struct {
	table *crc32.Table
}

var _ ports.Checksum = (*CRC32IEEE)(nil)

// NewCRC32IEEE creates a CRC32-IEEE accumulator.
func NewCRC32IEEE() *CRC32IEEE {
	return &CRC32IEEE{table: crc32.MakeTable(crc32.IEEE)}
}

// Initial returns the checksum of the empty stream.
func (c *CRC32IEEE) Initial() uint32 {
	return 0
}

// Update folds data into crc and returns the new running value.
func (c *CRC32IEEE) Update(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, c.table, data)
}

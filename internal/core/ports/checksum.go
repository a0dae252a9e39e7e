package ports

// Checksum accumulates a running 32-bit checksum over a stream of byte
// chunks. The specific algorithm depends on the implementation; the GZIP
// trailer requires CRC32 with the IEEE polynomial.
type Checksum interface {
	// Initial returns the checksum of the empty stream, the seed value
	// a fresh accumulation starts from.
	Initial() uint32

	// Update folds data into the running checksum and returns the new
	// value. Feeding a stream chunk by chunk must yield the same result
	// as checksumming it whole.
	Update(crc uint32, data []byte) uint32
}

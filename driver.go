package microcompress

// Driver is the interface for compressed body cache drivers.
// Keys already include the negotiated content coding, so a driver stores at
// most one body per URL per encoding and never needs to understand HTTP.
type Driver interface {
	Set(key string, compressed []byte) error
	Get(key string) (compressed []byte, found bool)
	Remove(key string) error

	// GetSize returns the number of bodies stored in the cache
	GetSize() int
}

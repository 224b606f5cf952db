package compress

// ZstdCompressor provides Zstandard compression for snapshot payloads.
//
// Zstd gives the best ratio of the supported algorithms on CSV text and
// is the default choice for archival. Two implementations exist behind
// build tags (see zstd_pure.go and zstd_cgo.go); both produce standard
// Zstandard frames and are interchangeable on the wire.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

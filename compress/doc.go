// Package compress provides compression codecs for host-side snapshots
// of the log's CSV payload.
//
// The on-flash data log is raw CSV (the embedded viewer depends on it);
// compression applies only off the device, when a captured image is
// archived or transmitted. Supported algorithms:
//
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio for text payloads
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CSV log dumps are highly repetitive (shared headers, recurring keys
// and numeric shapes), so Zstd typically reaches 4-10x on real logs;
// use S2 or LZ4 when snapshot latency matters more than size.
//
// The Zstd codec has two implementations selected by build tag: the
// default pure-Go klauspost/compress encoder, and a cgo gozstd variant
// behind the "zstdcgo" tag for hosts where the native library is worth
// the build complexity. The wire formats are interchangeable.
//
// All codec implementations are safe for concurrent use.
package compress

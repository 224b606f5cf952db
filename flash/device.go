// Package flash defines the contract between the log engine and the
// underlying page-erase-then-write NOR flash, together with an
// in-memory implementation used for testing and host-side tooling.
package flash

// Config describes the host-visible pseudo-file published over USB
// mass storage.
type Config struct {
	// FileName is the 8.3 name of the pseudo-file, e.g. "MY_DATA.HTM".
	FileName string
	// FileSize is the size in bytes of the pseudo-file.
	FileSize uint32
	// Visible controls whether the file is exposed to the host at all.
	Visible bool
}

// Device is the thin contract over NOR flash required by the log store.
//
// Geometry is fixed for the lifetime of the device. Erase granularity
// is one page; writes may only flip bits from 1 to 0 within a
// previously erased page.
type Device interface {
	// PageSize returns the smallest erasable unit in bytes.
	PageSize() uint32
	// FlashStart returns the first byte address owned by the device.
	FlashStart() uint32
	// FlashEnd returns the address one past the last usable byte.
	FlashEnd() uint32

	// Read copies len(dst) bytes starting at addr into dst.
	Read(dst []byte, addr uint32) error
	// Write programs len(src) bytes at addr. The destination must have
	// been erased, or the write must only clear bits.
	Write(addr uint32, src []byte) error
	// Erase resets one page to 0xFF. addr must be page aligned.
	Erase(addr uint32) error

	// SetConfiguration publishes the host-visible pseudo-file metadata.
	// When commit is true the configuration is persisted immediately.
	SetConfiguration(cfg Config, commit bool) error
	// Remount forces the host to re-enumerate the mass-storage device so
	// it observes the new configuration.
	Remount() error
}

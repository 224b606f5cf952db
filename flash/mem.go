package flash

import (
	"fmt"

	"github.com/arloliu/logfs/errs"
)

// MemDevice is a NOR flash simulator backed by a byte slice.
//
// Erased bytes read as 0xFF. Writes emulate NOR programming: each
// destination byte becomes the bitwise AND of its old and new value, so
// attempting to flip a 0 back to 1 without an erase silently sticks at
// 0, exactly as the hardware would misbehave. Tests rely on this to
// surface protocol violations as corrupted data rather than hiding them.
//
// MemDevice additionally supports write-drop crash injection for
// recovery testing.
type MemDevice struct {
	mem       []byte
	pageSize  uint32
	cfg       Config
	remounts  int
	writeStop int // -1 when disabled; otherwise bytes remaining before writes drop
}

var _ Device = (*MemDevice)(nil)

// NewMemDevice creates a memory-backed flash device with the given page
// size and page count, fully erased.
func NewMemDevice(pageSize, pages uint32) *MemDevice {
	d := &MemDevice{
		mem:       make([]byte, pageSize*pages),
		pageSize:  pageSize,
		writeStop: -1,
	}
	for i := range d.mem {
		d.mem[i] = 0xFF
	}

	return d
}

func (d *MemDevice) PageSize() uint32   { return d.pageSize }
func (d *MemDevice) FlashStart() uint32 { return 0 }
func (d *MemDevice) FlashEnd() uint32   { return uint32(len(d.mem)) }

// Read copies len(dst) bytes starting at addr into dst.
func (d *MemDevice) Read(dst []byte, addr uint32) error {
	if int(addr)+len(dst) > len(d.mem) {
		return fmt.Errorf("read %d bytes at 0x%08X: %w", len(dst), addr, errs.ErrOutOfRange)
	}

	copy(dst, d.mem[addr:])

	return nil
}

// Write programs len(src) bytes at addr with NOR semantics: bits may
// only transition from 1 to 0.
func (d *MemDevice) Write(addr uint32, src []byte) error {
	if int(addr)+len(src) > len(d.mem) {
		return fmt.Errorf("write %d bytes at 0x%08X: %w", len(src), addr, errs.ErrOutOfRange)
	}

	for i, b := range src {
		if d.writeStop == 0 {
			// Crash point reached: the remainder of this write is lost.
			return nil
		}
		if d.writeStop > 0 {
			d.writeStop--
		}

		d.mem[int(addr)+i] &= b
	}

	return nil
}

// Erase resets one page to 0xFF.
func (d *MemDevice) Erase(addr uint32) error {
	if addr%d.pageSize != 0 {
		return fmt.Errorf("erase at 0x%08X: %w", addr, errs.ErrUnalignedErase)
	}
	if int(addr)+int(d.pageSize) > len(d.mem) {
		return fmt.Errorf("erase at 0x%08X: %w", addr, errs.ErrOutOfRange)
	}

	for i := uint32(0); i < d.pageSize; i++ {
		d.mem[addr+i] = 0xFF
	}

	return nil
}

// SetConfiguration records the host-visible pseudo-file metadata.
func (d *MemDevice) SetConfiguration(cfg Config, commit bool) error {
	d.cfg = cfg
	return nil
}

// Remount counts host re-enumerations; the simulator has no real host.
func (d *MemDevice) Remount() error {
	d.remounts++
	return nil
}

// Configuration returns the last published pseudo-file configuration.
func (d *MemDevice) Configuration() Config { return d.cfg }

// Remounts returns how many times Remount was called.
func (d *MemDevice) Remounts() int { return d.remounts }

// CrashAfter arms write-drop injection: after n more bytes have been
// programmed, all subsequent programming is silently dropped, emulating
// power loss mid-write. Pass a negative n to disarm.
func (d *MemDevice) CrashAfter(n int) {
	d.writeStop = n
}

// Image returns the raw backing bytes. The slice aliases device memory;
// callers must not modify it.
func (d *MemDevice) Image() []byte { return d.mem }

// Snapshot returns a copy of the backing bytes, e.g. to emulate a host
// capture of the mass-storage file.
func (d *MemDevice) Snapshot() []byte {
	out := make([]byte, len(d.mem))
	copy(out, d.mem)

	return out
}

// Package store implements an append-only, flash-resident data log.
//
// The log occupies the device's internal flash, which is simultaneously
// exposed to a host computer as a read-only mass-storage file: a single
// HTML document whose first 2048 bytes are an embedded JavaScript
// viewer, followed by a fixed ASCII metadata record, a rolling journal
// of data-end checkpoints, and the appended CSV data itself.
//
// On-device code sees a column-oriented, row-appending key/value
// logger. Columns may be added between rows without rewriting
// historical data; each row is assembled in RAM and flushed as one CSV
// line. A write-through block cache coordinates all flash traffic, and
// the journal guarantees that the exact data-end pointer is recovered
// after a crash.
package store

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/arloliu/logfs/cache"
	"github.com/arloliu/logfs/errs"
	"github.com/arloliu/logfs/flash"
	"github.com/arloliu/logfs/format"
	"github.com/arloliu/logfs/internal/options"
)

// Status bits. Observers read these atomically without taking the
// writer lock, so they see a best-effort snapshot.
const (
	statusInitialized uint32 = 1 << iota
	statusRowStarted
	statusFull
)

// Log is the flash-resident data log engine.
//
// All mutating entry points serialize on a single mutex; the log is a
// single-writer structure. IsFull is a lock-free observer; IsPresent is
// lock-free once the log is initialized and otherwise takes the mutex
// to probe the medium.
type Log struct {
	mu    sync.Mutex
	dev   flash.Device
	cache *cache.BlockCache
	cfg   config

	status atomic.Uint32

	startAddress uint32
	journalStart uint32
	journalHead  uint32
	journalPages uint32
	dataStart    uint32
	dataEnd      uint32
	logEnd       uint32

	headingStart    uint32
	headingLength   uint32
	headingsChanged bool
	columns         []column
	colIndex        map[uint64]int

	timeStampFormat  format.TimeStampFormat
	timeStampHeading string
}

// New creates a Log over the given flash device. The store is not
// touched until the first operation; Init, or any logging call, loads
// an existing log or formats a new one.
func New(dev flash.Device, opts ...Option) (*Log, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Log{
		dev:   dev,
		cache: cache.New(dev, cfg.cacheBlockSize, cfg.cacheBlockCount),
		cfg:   cfg,
	}, nil
}

func (l *Log) statusHas(bit uint32) bool {
	return l.status.Load()&bit != 0
}

func (l *Log) statusSet(bit uint32) {
	for {
		old := l.status.Load()
		next := old | bit
		if next == old || l.status.CompareAndSwap(old, next) {
			return
		}
	}
}

func (l *Log) statusClear(bit uint32) {
	for {
		old := l.status.Load()
		next := old &^ bit
		if next == old || l.status.CompareAndSwap(old, next) {
			return
		}
	}
}

// Init loads an existing log store, or formats a new one when no valid
// store is found. It is idempotent.
func (l *Log) Init() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.init()
}

func (l *Log) init() error {
	if l.statusHas(statusInitialized) {
		return nil
	}

	if !l.probe() {
		// No valid store found. Reformat the physical medium.
		return l.clear(false)
	}

	if err := l.recover(); err != nil {
		return fmt.Errorf("log recovery: %w", err)
	}

	// We may be full here, but this is still a valid state.
	l.statusSet(statusInitialized)

	return nil
}

// probe reads the metadata record directly from flash (bypassing the
// cache to avoid polluting it) and validates it, loading the region
// boundaries on success.
func (l *Log) probe() bool {
	lo := computeLayout(l.dev, l.cfg.journalPages)
	l.startAddress = lo.startAddress
	l.journalStart = l.startAddress + l.dev.PageSize()

	raw := make([]byte, MetaSize)
	if err := l.dev.Read(raw, l.startAddress); err != nil {
		return false
	}

	meta, err := ParseMetadata(raw)
	if err != nil {
		return false
	}

	l.dataStart = meta.DataStart
	l.logEnd = meta.LogEnd

	pageSize := l.dev.PageSize()

	return l.dataStart >= l.startAddress+2*pageSize &&
		l.dataStart < l.logEnd &&
		l.logEnd < l.dev.FlashEnd()
}

// recover reconstructs the in-RAM state from a valid on-flash store:
// walk the journal to the last checkpoint, scan forward byte-by-byte
// past it to the exact data end, and re-parse the column headings.
func (l *Log) recover() error {
	l.journalPages = (l.dataStart-l.startAddress)/l.dev.PageSize() - 1
	l.journalHead = l.journalStart
	l.dataEnd = l.dataStart

	// Walk the journal for the most recent checkpoint. Processing
	// continues to the last valid entry rather than stopping at the
	// first, in case an invalidation was lost in a crash.
	entry := make([]byte, JournalEntrySize)
	valid := false
	for addr := l.journalStart; addr < l.dataStart; addr += JournalEntrySize {
		if err := l.cache.Read(entry, addr); err != nil {
			return err
		}

		// A valid reading followed by an unused entry means we're done.
		if containsOnly(entry, 0xFF) && valid {
			break
		}

		if !containsOnly(entry, 0x00) {
			l.journalHead = addr
			l.dataEnd = l.dataStart + parseHex(entry)
			valid = true
		}
	}

	// The checkpoint is rounded down to a cache block; advance past any
	// bytes written after it but before the crash.
	var d [1]byte
	for l.dataEnd < l.logEnd {
		if err := l.cache.Read(d[:], l.dataEnd); err != nil {
			return err
		}
		if d[0] == 0xFF {
			break
		}
		l.dataEnd++
	}

	return l.recoverHeadings()
}

// recoverHeadings locates the live column heading line after the
// metadata record, skipping the zeroed remains of older lines, and
// rebuilds the column list from it.
func (l *Log) recoverHeadings() error {
	l.headingStart = 0
	l.headingLength = 0
	l.resetColumns()

	start := l.startAddress + MetaSize

	var c [1]byte
	if err := l.cache.Read(c[:], start); err != nil {
		return err
	}
	for c[0] == 0 {
		start++
		if err := l.cache.Read(c[:], start); err != nil {
			return err
		}
	}

	// Read until unused memory.
	end := start
	for c[0] != 0xFF {
		end++
		if err := l.cache.Read(c[:], end); err != nil {
			return err
		}
	}

	length := end - start
	if length == 0 {
		return nil
	}

	l.headingStart = start
	l.headingLength = length

	raw := make([]byte, length)
	if err := l.cache.Read(raw, start); err != nil {
		return err
	}
	l.parseHeadings(raw)

	return nil
}

// Clear resets the log store, reformatting the medium. With fullErase
// set, every data page is erased as well; otherwise only the header,
// metadata, journal and first data page are, and stale data beyond the
// data start is simply unreachable.
func (l *Log) Clear(fullErase bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.clear(fullErase)
}

func (l *Log) clear(fullErase bool) error {
	lo := computeLayout(l.dev, l.cfg.journalPages)
	l.startAddress = lo.startAddress
	l.journalStart = lo.journalStart
	l.journalHead = lo.journalStart
	l.journalPages = l.cfg.journalPages
	l.dataStart = lo.dataStart
	l.dataEnd = lo.dataStart
	l.logEnd = lo.logEnd
	l.status.Store(0)

	// Remove any cached state around column headings.
	l.headingsChanged = false
	l.headingStart = 0
	l.headingLength = 0
	l.resetColumns()

	// Zero the FULL mark with a single byte write rather than a page
	// erase, to reduce flash wear on repeat clears.
	if err := l.dev.Write(l.logEnd, []byte{0x00}); err != nil {
		return fmt.Errorf("clear full mark: %w", err)
	}

	// Erase all pages holding the header, metadata, journal and the
	// first page of data storage.
	l.cache.Clear()
	limit := l.dataStart
	if fullErase {
		limit = l.logEnd
	}
	pageSize := l.dev.PageSize()
	for p := l.dev.FlashStart(); p <= limit; p += pageSize {
		if err := l.dev.Erase(p); err != nil {
			return fmt.Errorf("erase page 0x%08X: %w", p, err)
		}
	}

	// Write the viewer preamble directly, avoiding unnecessary
	// preheating of the cache.
	if err := l.dev.Write(l.dev.FlashStart(), viewerHeader[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	meta := Metadata{DataStart: l.dataStart, LogEnd: l.logEnd}
	if err := l.cache.Write(l.startAddress, meta.Bytes()); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	// Record that the log is empty: a fresh, unused journal slot.
	if err := l.cache.Write(l.journalHead, filledEntry(0xFF)); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}

	// Update the host-visible pseudo-file and republish it.
	cfg := flash.Config{
		FileName: l.cfg.fileName,
		FileSize: l.dev.FlashEnd() - l.dev.FlashStart() - pageSize,
		Visible:  true,
	}
	if err := l.dev.SetConfiguration(cfg, true); err != nil {
		return fmt.Errorf("set configuration: %w", err)
	}
	if err := l.dev.Remount(); err != nil {
		return fmt.Errorf("remount: %w", err)
	}

	l.statusSet(statusInitialized)

	return nil
}

// Invalidate marks an existing log store as invalid by zeroing the
// metadata record and the FULL mark. The next Init reformats the
// medium. Without a valid store present it only drops the initialized
// state.
func (l *Log) Invalidate() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.statusHas(statusInitialized) || l.probe() {
		zero := make([]byte, MetaSize)
		if err := l.dev.Write(l.startAddress, zero); err != nil {
			return fmt.Errorf("invalidate metadata: %w", err)
		}
		if err := l.dev.Write(l.logEnd, zero[:fullMarkSize]); err != nil {
			return fmt.Errorf("invalidate full mark: %w", err)
		}
	}

	l.status.Store(0)

	return nil
}

// IsPresent reports whether a valid log store exists on the medium.
// When the log is already initialized it answers from the status bits
// without locking, a best-effort snapshot; otherwise it takes the mutex
// and reads the metadata record from flash.
func (l *Log) IsPresent() bool {
	// Fast path when already initialized.
	if l.statusHas(statusInitialized) {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.probe()
}

// IsFull reports whether the data region is exhausted.
func (l *Log) IsFull() bool {
	return l.statusHas(statusFull)
}

// SetTimeStamp determines the format of the timestamp automatically
// added to each row, as an integer count of the given unit with two
// decimal places for units coarser than milliseconds. A timestamp
// column for the unit is created if not already known.
func (l *Log) SetTimeStamp(f format.TimeStampFormat) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.init(); err != nil {
		return err
	}

	l.timeStampFormat = f
	if f == format.TimeStampNone {
		return nil
	}

	l.timeStampHeading = "Time (" + f.Unit() + ")"
	l.addHeading(l.timeStampHeading, "")

	return nil
}

// BeginRow starts a new row, ready to be populated by LogData. An
// already-open row is implicitly completed first.
func (l *Log) BeginRow() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.beginRow()
}

func (l *Log) beginRow() error {
	if err := l.init(); err != nil {
		return err
	}

	// A BeginRow during an open transaction implicitly performs an
	// EndRow first; its outcome (e.g. a FULL log) is reported by the
	// next explicit EndRow.
	if l.statusHas(statusRowStarted) {
		_ = l.endRow()
	}

	for i := range l.columns {
		l.columns[i].value = ""
	}

	l.statusSet(statusRowStarted)

	return nil
}

// LogData populates the current row with the given key/value pair,
// starting a row implicitly if none is open. An unknown key adds a new
// column. Both operands are sanitized of symbols that would break the
// CSV structure.
func (l *Log) LogData(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.logData(key, value)
}

func (l *Log) logData(key, value string) error {
	if err := l.init(); err != nil {
		return err
	}

	if !l.statusHas(statusRowStarted) {
		if err := l.beginRow(); err != nil {
			return err
		}
	}

	key = cleanString(key, true, l.cfg.sentinel)
	value = cleanString(value, true, l.cfg.sentinel)

	if idx := l.findColumn(key); idx >= 0 {
		l.columns[idx].value = value
	} else {
		l.addHeading(key, value)
	}

	return nil
}

// AddHeading appends the given heading to the column list. It has no
// effect when the heading already exists.
func (l *Log) AddHeading(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.init(); err != nil {
		return err
	}

	l.addHeading(cleanString(key, true, l.cfg.sentinel), "")

	return nil
}

// EndRow completes the current row and pushes it to persistent storage.
// Returns errs.ErrInvalidState when no row is open and errs.ErrLogFull
// when the data region is exhausted.
func (l *Log) EndRow() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.endRow()
}

func (l *Log) endRow() error {
	if !l.statusHas(statusRowStarted) {
		return errs.ErrInvalidState
	}

	if err := l.init(); err != nil {
		return err
	}

	if l.timeStampFormat != format.TimeStampNone {
		ts := timestampValue(l.cfg.clock(), l.timeStampFormat)
		if err := l.logData(l.timeStampHeading, ts); err != nil {
			return err
		}
	}

	var headingErr error
	if l.headingsChanged {
		headingErr = l.flushHeadings()
	}

	row, empty := l.rowLine()
	if !empty {
		// The FULL transition is reported below; a failed append here
		// must not shadow the row-state reset.
		_ = l.logString(row)
	}

	l.statusClear(statusRowStarted)

	if l.statusHas(statusFull) {
		return errs.ErrLogFull
	}

	return headingErr
}

// flushHeadings persists the grown column schema: the previous heading
// line is zeroed in place, the new line is written adjacent to it, and
// the same line is replayed into the data region so CSV consumers see
// the schema in line order.
//
// The heading slot shares the metadata page and cannot grow past the
// journal region; a line that no longer fits is still replayed into the
// data region, but the slot keeps the old line and ErrHeadingOverflow
// is reported.
func (l *Log) flushHeadings() error {
	// The first heading line lands just after the metadata record.
	if l.headingStart == 0 {
		l.headingStart = l.startAddress + MetaSize
	}

	line := l.headingLine()

	var err error
	newStart := l.headingStart + l.headingLength
	if newStart+uint32(len(line)) <= l.journalStart {
		if l.headingLength > 0 {
			zero := make([]byte, l.headingLength)
			if werr := l.cache.Write(l.headingStart, zero); werr != nil {
				return werr
			}
		}

		l.headingStart = newStart
		l.headingLength = uint32(len(line))
		if werr := l.cache.Write(l.headingStart, []byte(line)); werr != nil {
			return werr
		}
	} else {
		err = errs.ErrHeadingOverflow
	}

	_ = l.logString(line)
	l.headingsChanged = false

	return err
}

// LogString injects the given text into the log verbatim, outside any
// row structure. Returns errs.ErrLogFull when the text does not fit in
// the remaining capacity.
func (l *Log) LogString(s string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.init(); err != nil {
		return err
	}

	return l.logString(s)
}

// DataStart returns the first address of the data region.
func (l *Log) DataStart() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.dataStart
}

// DataEnd returns the address one past the last appended byte.
func (l *Log) DataEnd() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.dataEnd
}

// LogEnd returns the address one past the data region's capacity.
func (l *Log) LogEnd() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.logEnd
}

package store

import "github.com/arloliu/logfs/flash"

// fullMarkSize is the width of the FULL mark slot trailing the data
// region: one 32-bit word that is 0xFFFFFFFF while the log has
// capacity and spells "FUL" in its low bytes once it fills.
const fullMarkSize = 4

// layout holds the page-aligned region boundaries computed from the
// flash geometry.
//
//	[ header ]   flashStart   .. startAddress-1
//	[ metadata ] startAddress .. startAddress+MetaSize-1
//	[ headings ] trailing the metadata, same page
//	[ journal ]  journalStart .. dataStart-1
//	[ data ]     dataStart    .. logEnd-1
//	[ FULL ]     logEnd       .. logEnd+3
type layout struct {
	startAddress uint32
	journalStart uint32
	dataStart    uint32
	logEnd       uint32
}

// computeLayout derives the region boundaries for the given device and
// journal size. The last page of flash is reserved; the FULL mark word
// sits immediately before it.
func computeLayout(dev flash.Device, journalPages uint32) layout {
	pageSize := dev.PageSize()

	start := uint32(headerSize)
	if start%pageSize != 0 {
		start = (1 + start/pageSize) * pageSize
	}

	journalStart := start + pageSize

	return layout{
		startAddress: start,
		journalStart: journalStart,
		dataStart:    journalStart + journalPages*pageSize,
		logEnd:       dev.FlashEnd() - pageSize - fullMarkSize,
	}
}

// headerStart returns the first address of the column heading region,
// immediately after the metadata record.
func (lo layout) headerStart() uint32 {
	return lo.startAddress + MetaSize
}

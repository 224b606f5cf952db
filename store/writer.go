package store

import (
	"fmt"

	"github.com/arloliu/logfs/errs"
)

// logString appends raw bytes to the data region. The caller holds the
// lock and has initialized the store.
//
// The append protocol: refuse lines that cannot fit in the remaining
// capacity (transitioning to FULL), sanitize the payload, then write
// page by page, eagerly erasing the next page whenever the current one
// will be filled. A journal checkpoint is recorded once the append
// crosses a cache block boundary.
func (l *Log) logString(s string) error {
	oldDataEnd := l.dataEnd
	data := []byte(s)

	// If a whole line cannot be written, treat the log as full.
	if uint32(len(data)) > l.logEnd-l.dataEnd {
		if !l.statusHas(statusFull) {
			if err := l.cache.Write(l.logEnd+1, []byte("FUL")); err != nil {
				return fmt.Errorf("write full mark: %w", err)
			}
			l.statusSet(statusFull)
		}

		return fmt.Errorf("append %d bytes: %w", len(data), errs.ErrLogFull)
	}

	if cleaned := CleanBuffer(data, false, l.cfg.sentinel); cleaned != nil {
		data = cleaned
	}

	pageSize := l.dev.PageSize()
	for len(data) > 0 {
		spaceOnPage := pageSize - l.dataEnd%pageSize
		n := spaceOnPage
		if uint32(len(data)) < n {
			n = uint32(len(data))
		}

		// About to fill (or overspill) the current page: erase the next
		// one ready for use, so the coming writes never touch unerased
		// flash.
		if spaceOnPage <= uint32(len(data)) && l.dataEnd+spaceOnPage < l.logEnd {
			nextPage := (l.dataEnd/pageSize + 1) * pageSize
			if err := l.dev.Erase(nextPage); err != nil {
				return fmt.Errorf("erase data page 0x%08X: %w", nextPage, err)
			}
		}

		if err := l.cache.Write(l.dataEnd, data[:n]); err != nil {
			return fmt.Errorf("append data: %w", err)
		}

		l.dataEnd += n
		data = data[n:]
	}

	// Record a journal checkpoint when the append crossed a cache block
	// boundary.
	blockSize := l.cache.BlockSize()
	if l.dataEnd/blockSize != oldDataEnd/blockSize {
		if err := l.journalCheckpoint(); err != nil {
			return fmt.Errorf("journal checkpoint: %w", err)
		}
	}

	return nil
}

// journalCheckpoint advances the journal head and records the current
// data end, rounded down to the cache block size.
//
// Ordering matters for crash recovery: the new entry is durable (the
// cache is write-through) before the previous entry is zeroed, so at
// every instant at least one valid entry exists.
func (l *Log) journalCheckpoint() error {
	oldHead := l.journalHead
	l.journalHead += JournalEntrySize

	pageSize := l.dev.PageSize()
	if l.journalHead%pageSize == 0 {
		// Rolled past the last journal page: cycle around.
		if l.journalHead == l.dataStart {
			l.journalHead = l.journalStart
		}

		l.cache.Erase(l.journalHead)
		if err := l.dev.Erase(l.journalHead); err != nil {
			return err
		}
	}

	blockSize := l.cache.BlockSize()
	length := (l.dataEnd - l.dataStart) / blockSize * blockSize
	if err := l.cache.Write(l.journalHead, journalEntry(length)); err != nil {
		return err
	}

	// Invalidate the previous entry.
	return l.cache.Write(oldHead, filledEntry(0x00))
}

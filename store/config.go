package store

import (
	"fmt"

	"github.com/arloliu/logfs/cache"
	"github.com/arloliu/logfs/internal/options"
)

const (
	// DefaultJournalPages is the number of flash pages dedicated to the
	// rolling journal.
	DefaultJournalPages = 2

	// DefaultFileName is the 8.3 name of the host-visible pseudo-file.
	DefaultFileName = "MY_DATA.HTM"
)

// config carries the tunables applied when constructing a Log.
type config struct {
	journalPages    uint32
	cacheBlockSize  uint32
	cacheBlockCount int
	sentinel        byte
	fileName        string
	clock           Clock
}

func defaultConfig() config {
	return config{
		journalPages:    DefaultJournalPages,
		cacheBlockSize:  cache.DefaultBlockSize,
		cacheBlockCount: cache.DefaultBlockCount,
		sentinel:        DefaultSentinel,
		fileName:        DefaultFileName,
		clock:           systemClock(),
	}
}

// Option configures a Log at construction time.
type Option = options.Option[*config]

// WithJournalPages sets the number of pages reserved for the journal
// region.
func WithJournalPages(n uint32) Option {
	return options.New(func(c *config) error {
		if n == 0 {
			return fmt.Errorf("journal pages must be positive")
		}
		c.journalPages = n

		return nil
	})
}

// WithCacheBlockSize sets the block cache granularity. Journal
// checkpoints are recorded at this granularity, so it also bounds the
// recovery scan distance.
func WithCacheBlockSize(n uint32) Option {
	return options.New(func(c *config) error {
		if n == 0 {
			return fmt.Errorf("cache block size must be positive")
		}
		c.cacheBlockSize = n

		return nil
	})
}

// WithCacheBlockCount sets the number of cache slots.
func WithCacheBlockCount(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("cache block count must be positive")
		}
		c.cacheBlockCount = n

		return nil
	})
}

// WithSentinel sets the byte substituted for sanitized characters.
func WithSentinel(b byte) Option {
	return options.NoError(func(c *config) {
		c.sentinel = b
	})
}

// WithFileName sets the host-visible pseudo-file name.
func WithFileName(name string) Option {
	return options.New(func(c *config) error {
		if name == "" {
			return fmt.Errorf("file name must not be empty")
		}
		c.fileName = name

		return nil
	})
}

// WithClock sets the millisecond clock used for timestamp synthesis.
func WithClock(clk Clock) Option {
	return options.New(func(c *config) error {
		if clk == nil {
			return fmt.Errorf("clock must not be nil")
		}
		c.clock = clk

		return nil
	})
}

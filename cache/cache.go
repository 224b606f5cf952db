// Package cache provides a small, fully-associative, write-through
// block cache over a flash.Device.
//
// The journal and the data writer repeatedly touch the same small flash
// regions; caching those blocks avoids re-reading flash on every
// access, while write-through guarantees a checkpoint is durable by the
// time the write call returns.
package cache

import (
	"github.com/arloliu/logfs/flash"
)

const (
	// DefaultBlockSize is the granularity the cache tracks, and the
	// granularity of journal checkpoints layered on top of it.
	DefaultBlockSize = 1024
	// DefaultBlockCount is the number of cache slots.
	DefaultBlockCount = 4
)

type block struct {
	addr  uint32
	valid bool
	data  []byte
}

// BlockCache is a fully-associative set of fixed-size blocks.
//
// It is not safe for concurrent use; the log store serializes access.
type BlockCache struct {
	dev       flash.Device
	blockSize uint32
	blocks    []block
	victim    int
}

// New creates a BlockCache over dev with the given block size and slot
// count. Zero values select the defaults.
func New(dev flash.Device, blockSize uint32, count int) *BlockCache {
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}
	if count <= 0 {
		count = DefaultBlockCount
	}

	c := &BlockCache{
		dev:       dev,
		blockSize: blockSize,
		blocks:    make([]block, count),
	}
	for i := range c.blocks {
		c.blocks[i].data = make([]byte, blockSize)
	}

	return c
}

// BlockSize returns the cache block size in bytes.
func (c *BlockCache) BlockSize() uint32 { return c.blockSize }

// lookup returns the cached block holding addr, or nil.
func (c *BlockCache) lookup(base uint32) *block {
	for i := range c.blocks {
		if c.blocks[i].valid && c.blocks[i].addr == base {
			return &c.blocks[i]
		}
	}

	return nil
}

// fill loads the block containing base from flash into a cache slot,
// evicting round-robin.
func (c *BlockCache) fill(base uint32) (*block, error) {
	blk := &c.blocks[c.victim]
	c.victim = (c.victim + 1) % len(c.blocks)

	blk.valid = false
	if err := c.dev.Read(blk.data, base); err != nil {
		return nil, err
	}
	blk.addr = base
	blk.valid = true

	return blk, nil
}

// Read copies len(dst) bytes at addr into dst, populating cache blocks
// as needed.
func (c *BlockCache) Read(dst []byte, addr uint32) error {
	for len(dst) > 0 {
		base := addr - addr%c.blockSize
		off := addr - base

		n := c.blockSize - off
		if uint32(len(dst)) < n {
			n = uint32(len(dst))
		}

		blk := c.lookup(base)
		if blk == nil {
			var err error
			if blk, err = c.fill(base); err != nil {
				return err
			}
		}

		copy(dst[:n], blk.data[off:off+n])

		dst = dst[n:]
		addr += n
	}

	return nil
}

// Write programs len(src) bytes at addr through to flash, splitting on
// block boundaries and keeping any cached copies coherent.
//
// The cached copy is refreshed from flash after the device write so it
// reflects what was actually programmed, including bits that could not
// be set back to 1.
func (c *BlockCache) Write(addr uint32, src []byte) error {
	for len(src) > 0 {
		base := addr - addr%c.blockSize
		off := addr - base

		n := c.blockSize - off
		if uint32(len(src)) < n {
			n = uint32(len(src))
		}

		if err := c.dev.Write(addr, src[:n]); err != nil {
			return err
		}

		blk := c.lookup(base)
		if blk == nil {
			// Write-allocate: the journal and data writer read back the
			// regions they touch, so preheat the block.
			if _, err := c.fill(base); err != nil {
				return err
			}
		} else if err := c.dev.Read(blk.data[off:off+n], addr); err != nil {
			blk.valid = false
			return err
		}

		src = src[n:]
		addr += n
	}

	return nil
}

// Erase invalidates any cached blocks overlapping the page at addr. It
// does not itself erase flash; the caller issues the device erase.
func (c *BlockCache) Erase(pageAddr uint32) {
	pageSize := c.dev.PageSize()
	for i := range c.blocks {
		blk := &c.blocks[i]
		if blk.valid && blk.addr+c.blockSize > pageAddr && blk.addr < pageAddr+pageSize {
			blk.valid = false
		}
	}
}

// Clear invalidates every cache slot.
func (c *BlockCache) Clear() {
	for i := range c.blocks {
		c.blocks[i].valid = false
	}
}

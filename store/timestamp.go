package store

import (
	"strconv"
	"time"

	"github.com/arloliu/logfs/format"
)

// Clock reports the system uptime in milliseconds. The log synthesizes
// timestamp column values from it.
type Clock func() uint64

// systemClock returns the default Clock: milliseconds elapsed since the
// clock was created.
func systemClock() Clock {
	start := time.Now()

	return func() uint64 {
		return uint64(time.Since(start) / time.Millisecond)
	}
}

// timestampValue renders the timestamp cell for the given clock reading
// and format.
//
// The quotient of the millisecond clock and the format divisor is split
// into a billions part and a nine-digit remainder to survive 32-bit
// overflow; for units coarser than milliseconds the divisor is scaled
// so the two low decimal digits carry the fraction, emitted after a
// decimal point.
func timestampValue(nowMS uint64, f format.TimeStampFormat) string {
	t := nowMS / uint64(f)

	billions := t / 1_000_000_000
	units := t % 1_000_000_000
	fraction := uint64(0)

	if f > format.TimeStampMilliseconds {
		fraction = units % 100
		units /= 100
		billions /= 100
	}

	var s string
	if billions != 0 {
		s = strconv.FormatUint(billions, 10) + padNum(units, 9)
	} else {
		s = strconv.FormatUint(units, 10)
	}

	if f > format.TimeStampMilliseconds {
		s += "." + padNum(fraction, 2)
	}

	return s
}

// padNum renders v in decimal, left-padded with zeroes to digits.
func padNum(v uint64, digits int) string {
	s := strconv.FormatUint(v, 10)
	for len(s) < digits {
		s = "0" + s
	}

	return s
}

package format

type (
	// TimeStampFormat selects the unit of the synthesized timestamp
	// column. The numeric value of each constant is the divisor applied
	// to the system millisecond clock, scaled so that the two least
	// significant decimal digits of the quotient carry the fractional
	// part for units coarser than milliseconds.
	TimeStampFormat uint32

	CompressionType uint8
)

const (
	TimeStampNone         TimeStampFormat = 0
	TimeStampMilliseconds TimeStampFormat = 1
	TimeStampSeconds      TimeStampFormat = 10
	TimeStampMinutes      TimeStampFormat = 600
	TimeStampHours        TimeStampFormat = 36000
	// TimeStampDays shares the divisor and the "hours" unit label with
	// TimeStampHours, matching the behavior of existing log stores.
	TimeStampDays TimeStampFormat = 36000

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Unit returns the human-readable unit label used in the timestamp
// column heading, e.g. "Time (seconds)".
func (f TimeStampFormat) Unit() string {
	switch f {
	case TimeStampMilliseconds:
		return "milliseconds"
	case TimeStampSeconds:
		return "seconds"
	case TimeStampMinutes:
		return "minutes"
	case TimeStampHours:
		return "hours"
	default:
		return ""
	}
}

func (f TimeStampFormat) String() string {
	if f == TimeStampNone {
		return "None"
	}

	if u := f.Unit(); u != "" {
		return u
	}

	return "Unknown"
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

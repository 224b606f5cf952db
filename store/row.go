package store

import (
	"github.com/arloliu/logfs/internal/hash"
	"github.com/arloliu/logfs/internal/pool"
)

// column is one entry of the ordered column list: the heading key and
// the value pending for the next EndRow.
type column struct {
	key   string
	value string
}

// findColumn returns the index of the column with the given key, or -1.
//
// Lookup goes through the xxHash64 index first; the stored key is
// compared to guard against hash collisions, falling back to a linear
// scan so a colliding key still resolves correctly.
func (l *Log) findColumn(key string) int {
	if idx, ok := l.colIndex[hash.ID(key)]; ok && l.columns[idx].key == key {
		return idx
	}

	for i := range l.columns {
		if l.columns[i].key == key {
			return i
		}
	}

	return -1
}

// addHeading appends a new column with the given pending value. It has
// no effect when a column with that key already exists.
func (l *Log) addHeading(key, value string) {
	if l.findColumn(key) >= 0 {
		return
	}

	l.columns = append(l.columns, column{key: key, value: value})

	if l.colIndex == nil {
		l.colIndex = make(map[uint64]int)
	}
	id := hash.ID(key)
	if _, exists := l.colIndex[id]; !exists {
		l.colIndex[id] = len(l.columns) - 1
	}

	l.headingsChanged = true
}

// resetColumns discards all RAM column state.
func (l *Log) resetColumns() {
	l.columns = nil
	l.colIndex = nil
}

// headingLine renders the CSV header line "k1,k2,…,kN\n".
func (l *Log) headingLine() string {
	buf := pool.GetRowBuffer()
	defer pool.PutRowBuffer(buf)

	for i := range l.columns {
		buf.MustWriteString(l.columns[i].key)
		if i+1 != len(l.columns) {
			buf.MustWriteByte(',')
		}
	}
	buf.MustWriteByte('\n')

	return string(buf.Bytes())
}

// rowLine joins the pending values into a CSV row. The second return
// reports whether every value was empty, in which case the caller
// suppresses the line.
func (l *Log) rowLine() (string, bool) {
	buf := pool.GetRowBuffer()
	defer pool.PutRowBuffer(buf)

	empty := true
	for i := range l.columns {
		buf.MustWriteString(l.columns[i].value)
		if l.columns[i].value != "" {
			empty = false
		}
		if i+1 != len(l.columns) {
			buf.MustWriteByte(',')
		}
	}
	buf.MustWriteByte('\n')

	return string(buf.Bytes()), empty
}

// parseHeadings rebuilds the column list from the on-flash heading
// line bytes. Each key is terminated by ',' or '\n'; bytes after the
// final terminator are ignored.
func (l *Log) parseHeadings(raw []byte) {
	l.resetColumns()

	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == ',' || raw[i] == '\n' {
			l.addHeading(string(raw[start:i]), "")
			start = i + 1
		}
	}

	// Recovered headings are not pending a rewrite.
	l.headingsChanged = false
}

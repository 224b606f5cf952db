// Package logfs provides an append-only, flash-resident CSV data log
// for embedded devices whose internal flash doubles as a host-visible
// mass-storage file.
//
// The log surfaces to the host as a single HTML document: a fixed
// JavaScript viewer preamble followed by the log's metadata, journal
// and CSV data, so that opening the file in a browser renders the
// captured data as a table. To on-device code it presents a
// column-oriented, row-appending key/value logger with dynamic schema
// growth and crash-exact recovery of the data-end pointer.
//
// # Basic Usage
//
// Logging rows on the device:
//
//	import (
//	    "github.com/arloliu/logfs"
//	    "github.com/arloliu/logfs/format"
//	)
//
//	log, _ := logfs.Open(dev)
//	log.SetTimeStamp(format.TimeStampSeconds)
//
//	log.BeginRow()
//	log.LogData("temperature", "21.5")
//	log.LogData("humidity", "48")
//	log.EndRow()
//
// Recovering the CSV from a host capture of the MY_DATA.HTM file:
//
//	dump, _ := export.ParseImage(image)
//	fmt.Println(string(dump.CSV))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the store
// package. For fine-grained control (journal sizing, cache geometry,
// clock injection), use the store package directly.
package logfs

import (
	"github.com/arloliu/logfs/flash"
	"github.com/arloliu/logfs/store"
)

// New creates a Log over the given flash device with default options.
// The medium is not touched until the first operation.
func New(dev flash.Device, opts ...store.Option) (*store.Log, error) {
	return store.New(dev, opts...)
}

// Open creates a Log and immediately initializes it: an existing log
// store is loaded, or a fresh one is formatted when none is present.
func Open(dev flash.Device, opts ...store.Option) (*store.Log, error) {
	l, err := store.New(dev, opts...)
	if err != nil {
		return nil, err
	}

	if err := l.Init(); err != nil {
		return nil, err
	}

	return l, nil
}

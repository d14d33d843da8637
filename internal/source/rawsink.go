package source

import "encoding/json"

// RawSink receives each page's verbatim items as soon as the page arrives,
// so partial progress is on disk before any later failure.
type RawSink interface {
	WritePage(items []json.RawMessage) error
}

// RawBatch is one open raw-store file for a fetch run.
type RawBatch interface {
	RawSink
	Pages() int
	Items() int
	Close() error
}

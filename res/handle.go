// Package res implements the resource handle spec.md §4.M asks for: a
// value that hides whether the bytes behind it came from an in-memory
// stream or a file/network fetch, so the parser and the EXTERNPROTO loader
// can treat both uniformly.
package res

import (
	"bytes"
	"io"
	"os"
)

// Handle is an opaque source of bytes plus the URI it was read from (or
// would be read from, for a deferred fetch).
type Handle struct {
	uri    string
	reader io.Reader
	closer io.Closer
}

// FromStream wraps an already-open reader. uri is used only for relative
// resolution and diagnostics; it may be empty.
func FromStream(uri string, r io.Reader) *Handle {
	h := &Handle{uri: uri, reader: r}
	if c, ok := r.(io.Closer); ok {
		h.closer = c
	}
	return h
}

// FromBytes wraps an in-memory byte slice, as used by EXTERNPROTO fetch
// completions handed to the registry by hand (spec.md §8 scenario 3).
func FromBytes(uri string, data []byte) *Handle {
	return &Handle{uri: uri, reader: bytes.NewReader(data)}
}

// Open opens the local file at path as a Handle whose URI is a file://
// URL for path.
func Open(path string) (*Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Handle{uri: "file://" + path, reader: f, closer: f}, nil
}

// URI returns the handle's origin URI, used as the base for relative
// references found within the resource.
func (h *Handle) URI() string {
	return h.uri
}

// Reader returns the underlying byte source.
func (h *Handle) Reader() io.Reader {
	return h.reader
}

// Close releases any underlying OS resource. Safe to call on a
// stream-backed or bytes-backed Handle, where it is a no-op.
func (h *Handle) Close() error {
	if h.closer != nil {
		return h.closer.Close()
	}
	return nil
}

// ReadAll drains the handle's reader, closing it afterward.
func (h *Handle) ReadAll() ([]byte, error) {
	defer h.Close()
	return io.ReadAll(h.reader)
}

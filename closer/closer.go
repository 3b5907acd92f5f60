// Package closer provides small helpers for managing io.Closer resources,
// mainly for readers layered on top of other readers (a decompressor over a
// file) where several things must be closed in a specific order.
package closer

import (
	"errors"
	"io"
)

// Closer is a collector that manages multiple io.Closer instances and closes
// them all at once, in the order they were added.
type Closer struct {
	closers []io.Closer
}

// NewCloser creates a new Closer with zero or more initial io.Closer instances.
func NewCloser(closers ...io.Closer) *Closer {
	return &Closer{closers: closers}
}

// Add registers an io.Closer to be closed when Close is called. Nil closers
// are allowed and skipped during Close.
//
// Add is not thread-safe. If you need to add closers concurrently, use
// external synchronization.
func (c *Closer) Add(closer io.Closer) {
	c.closers = append(c.closers, closer)
}

// Close closes all registered io.Closer instances in the order they were
// added. Every closer is attempted even when earlier ones fail, and all
// errors are joined.
func (c *Closer) Close() error {
	var errs []error

	for _, closer := range c.closers {
		if closer != nil {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// customCloser wraps a function to make it an io.Closer.
type customCloser struct {
	closeFn func() error
}

// CustomCloser creates an io.Closer from a cleanup function. Returns nil if
// closeFn is nil.
func CustomCloser(closeFn func() error) io.Closer {
	if closeFn == nil {
		return nil
	}

	return &customCloser{closeFn: closeFn}
}

// Close executes the wrapped cleanup function and returns its result.
func (c *customCloser) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}

	return nil
}

// readCloser pairs a reader with an independent closer.
type readCloser struct {
	io.Reader
	io.Closer
}

// ForReader combines a reader with a separate closer into an io.ReadCloser.
// Useful when the reader that produces the bytes is not the resource that
// owns them, such as a decompressor layered over a file.
func ForReader(reader io.Reader, closer io.Closer) io.ReadCloser {
	return &readCloser{Reader: reader, Closer: closer}
}

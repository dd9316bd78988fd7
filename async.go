// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

// Handler receives the result of one asynchronous read or write: the byte
// count and any error, with the same meaning as the blocking Read/Write
// results.
type Handler func(n int, err error)

// Completion receives the final result of an asynchronous copy: the number of
// bytes written to the destination and the first error, or nil.
type Completion func(written int64, err error)

// AsyncReader is the completion-driven analog of Reader.
//
// AsyncRead schedules a read into p. If it returns a non-nil error, the
// operation was never scheduled and h is never invoked. If it returns nil, h
// is invoked exactly once, either before AsyncRead returns (inline) or later.
// p must not be touched by the caller until h runs.
type AsyncReader interface {
	AsyncRead(p []byte, h Handler) error
}

// AsyncWriter is the completion-driven analog of Writer, with the same
// scheduling contract as AsyncReader.
type AsyncWriter interface {
	AsyncWrite(p []byte, h Handler) error
}

// AsyncReaderFunc adapts a function to AsyncReader.
type AsyncReaderFunc func(p []byte, h Handler) error

func (f AsyncReaderFunc) AsyncRead(p []byte, h Handler) error { return f(p, h) }

// AsyncWriterFunc adapts a function to AsyncWriter.
type AsyncWriterFunc func(p []byte, h Handler) error

func (f AsyncWriterFunc) AsyncWrite(p []byte, h Handler) error { return f(p, h) }

// Repeat tells RepeatedAsyncRead whether to issue another read.
type Repeat bool

const (
	Stop  Repeat = false
	Again Repeat = true
)

// RepeatedAsyncRead keeps reading from r into p for as long as h returns
// Again. Each completion is handed to h; p holds the bytes of that completion
// only until h returns.
//
// If scheduling a read fails synchronously, h receives (0, err) and decides
// whether to try again; a reader that keeps rejecting while h keeps asking
// for more spins in the calling goroutine.
func RepeatedAsyncRead(r AsyncReader, p []byte, h func(n int, err error) Repeat) {
	rr := &repeatedRead{r: r, p: p, h: h}
	rr.schedule(Again)
}

// repeatedRead issues reads from the loop in schedule. A completion that
// fires inline is parked and handed to h once AsyncRead has returned, so a
// reader that always completes inline does not grow the stack.
type repeatedRead struct {
	r AsyncReader
	p []byte
	h func(n int, err error) Repeat

	issuing bool
	fired   bool
	n       int
	err     error
}

func (rr *repeatedRead) schedule(repeat Repeat) {
	for repeat == Again {
		rr.fired = false
		rr.issuing = true
		err := rr.r.AsyncRead(rr.p, rr.done)
		rr.issuing = false
		switch {
		case rr.fired:
			n, rerr := rr.n, rr.err
			rr.err = nil
			repeat = rr.h(n, rerr)
		case err != nil:
			repeat = rr.h(0, err)
		default:
			return
		}
	}
}

func (rr *repeatedRead) done(n int, err error) {
	if rr.issuing {
		if !rr.fired {
			rr.fired = true
			rr.n, rr.err = n, err
		}
		return
	}
	rr.schedule(rr.h(n, err))
}

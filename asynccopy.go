// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

import (
	"github.com/valyala/bytebufferpool"
)

// Unlimited is the copy budget meaning "until end-of-stream".
// Any negative budget behaves the same way.
const Unlimited int64 = -1

// CopyFromAsync copies from the async source src into the blocking
// destination dst until src reaches end-of-stream, n bytes have been copied,
// or an error occurs. A negative n means no limit.
//
// done fires exactly once with the number of bytes written and the first
// error, or nil when the source was exhausted or the budget reached. n == 0
// completes immediately without any I/O. If the very first read cannot be
// scheduled, done fires before CopyFromAsync returns.
func CopyFromAsync(dst Writer, src AsyncReader, n int64, done Completion) {
	c := &copyChain{read: src.AsyncRead, write: writeNow(dst), done: done}
	c.start(n)
}

// CopyToAsync copies from the blocking source src into the async destination
// dst. Budget and completion rules are those of CopyFromAsync.
func CopyToAsync(dst AsyncWriter, src Reader, n int64, done Completion) {
	c := &copyChain{read: readNow(src), write: dst.AsyncWrite, done: done}
	c.start(n)
}

// AsyncCopyN copies at most n bytes from src to dst, both completion-driven.
// Each read completion issues the next write and each write completion issues
// the next read, so at most one operation is outstanding at any time.
// Budget and completion rules are those of CopyFromAsync.
func AsyncCopyN(dst AsyncWriter, src AsyncReader, n int64, done Completion) {
	c := &copyChain{read: src.AsyncRead, write: dst.AsyncWrite, done: done}
	c.start(n)
}

// AsyncCopy copies from src to dst until src reaches end-of-stream or an
// error occurs.
func AsyncCopy(dst AsyncWriter, src AsyncReader, done Completion) {
	AsyncCopyN(dst, src, Unlimited, done)
}

// readNow presents a blocking Reader as a schedule function whose handler
// always fires inline.
func readNow(r Reader) func(p []byte, h Handler) error {
	return func(p []byte, h Handler) error {
		n, err := r.Read(p)
		h(n, err)
		return nil
	}
}

// writeNow presents a blocking Writer as a schedule function whose handler
// always fires inline.
func writeNow(w Writer) func(p []byte, h Handler) error {
	return func(p []byte, h Handler) error {
		n, err := w.Write(p)
		h(n, err)
		return nil
	}
}

// transfer is the state shared by every step of one copy chain.
type transfer struct {
	bb     *bytebufferpool.ByteBuffer
	buf    []byte
	copied int64
	limit  int64 // negative: unlimited
}

func newTransfer(limit int64) *transfer {
	bb, buf := getBuffer()
	return &transfer{bb: bb, buf: buf, limit: limit}
}

// window returns the buffer slice for the next read:
// min(remaining budget, buffer capacity) bytes long.
func (t *transfer) window() []byte {
	if t.limit < 0 {
		return t.buf
	}
	rem := t.limit - t.copied
	if rem < int64(len(t.buf)) {
		return t.buf[:rem]
	}
	return t.buf
}

func (t *transfer) release() {
	putBuffer(t.bb)
	t.bb, t.buf = nil, nil
}

type chainState uint8

const (
	chainReading chainState = iota
	chainWriting
	chainDone
)

// copyChain drives one copy as a sequence of alternating read and write
// continuations. state is the single owner tag: exactly one of reading,
// writing or done holds at any time, and only the handler of the outstanding
// operation (matching state and seq) may advance the chain.
//
// Operations are issued from the loop in drive. A handler that fires while
// its operation is still being issued only parks its result, and drive
// advances the chain once the issuing call returns, so inline completion
// keeps the stack flat however long the stream. Only a deferred handler
// re-enters drive.
type copyChain struct {
	read  func(p []byte, h Handler) error
	write func(p []byte, h Handler) error
	done  Completion
	t     *transfer
	state chainState

	seq       uint64 // identifies the outstanding operation; stale handlers are ignored
	requested int    // size of the outstanding read or write
	pending   error  // read error delivered together with data, reported after the write

	issuing   bool // inside c.read or c.write
	completed bool // the outstanding operation's handler has fired
	rn        int  // result parked by an inline handler
	rerr      error
}

func (c *copyChain) start(n int64) {
	if n == 0 {
		c.state = chainDone
		done := c.done
		c.done, c.read, c.write = nil, nil, nil
		done(0, nil)
		return
	}
	c.t = newTransfer(n)
	c.state = chainReading
	c.drive()
}

// drive issues operations until one completes later or the chain finishes.
func (c *copyChain) drive() {
	for c.state != chainDone {
		c.seq++
		seq := c.seq
		h := func(n int, err error) { c.complete(seq, n, err) }
		c.completed = false
		c.issuing = true
		var err error
		switch c.state {
		case chainReading:
			p := c.t.window()
			c.requested = len(p)
			err = c.read(p, h)
		case chainWriting:
			err = c.write(c.t.buf[:c.requested], h)
		}
		c.issuing = false
		if c.state == chainDone {
			return
		}
		if !c.completed {
			if err != nil {
				c.finish(err)
			}
			return
		}
		n, rerr := c.rn, c.rerr
		c.rerr = nil
		c.step(n, rerr)
	}
}

// complete is the handler of every operation the chain issues.
func (c *copyChain) complete(seq uint64, n int, err error) {
	if c.state == chainDone || seq != c.seq || c.completed {
		return
	}
	c.completed = true
	if c.issuing {
		c.rn, c.rerr = n, err
		return
	}
	c.step(n, err)
	c.drive()
}

func (c *copyChain) step(n int, err error) {
	switch c.state {
	case chainReading:
		c.onRead(n, err)
	case chainWriting:
		c.onWrite(n, err)
	}
}

func (c *copyChain) onRead(n int, err error) {
	if n < 0 || n > c.requested {
		c.finish(ErrOverRead.at(OpAsyncRead))
		return
	}
	if n == 0 {
		if isEndOfStream(n, err) {
			c.finish(nil)
		} else {
			c.finish(err)
		}
		return
	}
	c.pending = err
	c.state = chainWriting
	c.requested = n
}

func (c *copyChain) onWrite(n int, err error) {
	if err != nil {
		if n > 0 && n <= c.requested {
			c.t.copied += int64(n)
		}
		c.finish(err)
		return
	}
	if n == 0 {
		c.finish(ErrZeroWrite.at(OpAsyncWrite))
		return
	}
	if n != c.requested {
		if n > 0 && n < c.requested {
			c.t.copied += int64(n)
		}
		c.finish(ErrShortWrite.at(OpAsyncWrite))
		return
	}
	c.t.copied += int64(n)
	if c.pending != nil {
		if c.pending == EOF {
			c.finish(nil)
		} else {
			c.finish(c.pending)
		}
		return
	}
	if len(c.t.window()) == 0 {
		c.finish(nil)
		return
	}
	c.state = chainReading
}

// finish completes the chain exactly once. It drops every reference the
// chain holds and returns the transfer buffer to the pool before calling
// done, so a handler that fires late finds a finished chain and nothing else.
func (c *copyChain) finish(err error) {
	if c.state == chainDone {
		return
	}
	c.state = chainDone
	done := c.done
	var written int64
	if c.t != nil {
		written = c.t.copied
		c.t.release()
	}
	c.done, c.read, c.write, c.t, c.pending, c.rerr = nil, nil, nil, nil, nil, nil
	done(written, err)
}

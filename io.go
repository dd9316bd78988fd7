// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// DefaultBufferSize is the transfer buffer size used when the caller does not
// supply one.
const DefaultBufferSize = 32 * 1024

// getBuffer takes a pooled buffer and sizes it to DefaultBufferSize.
// The returned slice aliases bb.B until putBuffer is called.
func getBuffer() (bb *bytebufferpool.ByteBuffer, buf []byte) {
	bb = bytebufferpool.Get()
	if cap(bb.B) < DefaultBufferSize {
		bb.B = make([]byte, DefaultBufferSize)
	}
	bb.B = bb.B[:DefaultBufferSize]
	return bb, bb.B
}

func putBuffer(bb *bytebufferpool.ByteBuffer) { bytebufferpool.Put(bb) }

// Copy copies from src to dst until src reaches end-of-stream or an error
// occurs. It returns the number of bytes written.
//
// Termination:
//   - A read of zero bytes with a nil error, or io.EOF, ends the copy with
//     a nil error. Bytes delivered together with io.EOF are written first.
//   - Any other read error is returned unchanged, after the bytes delivered
//     with it have been written.
//   - A read reporting more bytes than the buffer holds returns ErrOverRead.
//   - A write error is returned unchanged. A write that accepts nothing
//     returns ErrZeroWrite; any other count mismatch returns ErrShortWrite.
//     Nothing is retried.
//
// If src implements WriterTo or dst implements ReaderFrom, that fast path is
// used and its result is returned, with io.EOF mapped to nil. The fast path
// sees a wrapped dst or src that applies the same over-read, zero-write and
// short-write checks.
func Copy(dst Writer, src Reader) (written int64, err error) {
	return copyBuffer(dst, src, nil)
}

// CopyBuffer is like Copy but stages through buf.
// If buf is nil, a pooled buffer of DefaultBufferSize is used.
// If buf has zero length, CopyBuffer panics.
func CopyBuffer(dst Writer, src Reader, buf []byte) (written int64, err error) {
	if buf != nil && len(buf) == 0 {
		panic("empty buffer in CopyBuffer")
	}
	return copyBuffer(dst, src, buf)
}

// CopyN copies n bytes (or until an error) from src to dst.
// On return, written == n if and only if err == nil. A source that ends
// early yields io.ErrUnexpectedEOF.
func CopyN(dst Writer, src Reader, n int64) (written int64, err error) {
	return CopyNBuffer(dst, src, n, nil)
}

// CopyNBuffer is like CopyN but stages through buf if needed.
// If buf is nil, a pooled buffer is used.
// If buf has zero length, CopyNBuffer panics.
func CopyNBuffer(dst Writer, src Reader, n int64, buf []byte) (written int64, err error) {
	if n <= 0 {
		return 0, nil
	}
	if buf != nil && len(buf) == 0 {
		panic("empty buffer in CopyNBuffer")
	}
	lr := limitedReader{R: src, N: n}
	written, err = copyBuffer(dst, &lr, buf)
	if written == n {
		return n, nil
	}
	if err == nil {
		return written, io.ErrUnexpectedEOF
	}
	return written, err
}

type limitedReader struct {
	R Reader
	N int64
}

func (l *limitedReader) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err = l.R.Read(p)
	if n < 0 || n > len(p) {
		return 0, ErrOverRead.at(OpCopyRead)
	}
	l.N -= int64(n)
	return n, err
}

// checkedReader holds a fast-path ReaderFrom to the Read contract: an
// over-reported count fails with ErrOverRead before the callee can use it.
type checkedReader struct{ r Reader }

func (c checkedReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n < 0 || n > len(p) {
		return 0, ErrOverRead.at(OpCopyRead)
	}
	return n, err
}

// checkedWriter reports zero and short writes seen by a fast-path WriterTo
// the same way the copy loop does.
type checkedWriter struct{ w Writer }

func (c checkedWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil || len(p) == 0 {
		if n < 0 || n > len(p) {
			n = 0
		}
		return n, err
	}
	switch {
	case n == 0:
		return 0, ErrZeroWrite.at(OpCopyWrite)
	case n < 0 || n > len(p):
		return 0, ErrShortWrite.at(OpCopyWrite)
	case n != len(p):
		return n, ErrShortWrite.at(OpCopyWrite)
	}
	return n, nil
}

func copyBuffer(dst Writer, src Reader, buf []byte) (written int64, err error) {
	if wt, ok := src.(WriterTo); ok {
		written, err = wt.WriteTo(checkedWriter{dst})
		if err == io.EOF {
			err = nil
		}
		return written, err
	}
	if rf, ok := dst.(ReaderFrom); ok {
		written, err = rf.ReadFrom(checkedReader{src})
		if err == io.EOF {
			err = nil
		}
		return written, err
	}

	if buf == nil {
		bb, b := getBuffer()
		defer putBuffer(bb)
		buf = b
	}

	for {
		nr, er := src.Read(buf)
		if nr < 0 || nr > len(buf) {
			return written, ErrOverRead.at(OpCopyRead)
		}
		if nr > 0 {
			nw, ew := dst.Write(buf[:nr])
			if nw > 0 && nw <= nr {
				written += int64(nw)
			}
			if ew != nil {
				return written, ew
			}
			if nw == 0 {
				return written, ErrZeroWrite.at(OpCopyWrite)
			}
			if nw != nr {
				return written, ErrShortWrite.at(OpCopyWrite)
			}
		}

		if er != nil {
			if er == io.EOF {
				return written, nil
			}
			return written, er
		}

		if nr == 0 {
			return written, nil
		}
	}
}

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

// AsAsyncReader adapts a blocking Reader to AsyncReader. The read itself runs
// inside the function posted to s, followed by the handler.
//
// One read may be outstanding at a time; AsyncRead returns ErrWouldBlock
// while the previous one has not completed. The slot is released before the
// handler runs, so a handler may schedule the next read.
func AsAsyncReader(r Reader, s Scheduler) AsyncReader {
	return &asyncReader{r: r, s: s}
}

// AsAsyncWriter adapts a blocking Writer to AsyncWriter, with the same
// scheduling rules as AsAsyncReader.
func AsAsyncWriter(w Writer, s Scheduler) AsyncWriter {
	return &asyncWriter{w: w, s: s}
}

type asyncReader struct {
	r    Reader
	s    Scheduler
	busy bool
}

func (a *asyncReader) AsyncRead(p []byte, h Handler) error {
	if a.busy {
		return ErrWouldBlock.at(OpAsyncRead)
	}
	a.busy = true
	a.s.Post(func() {
		n, err := a.r.Read(p)
		a.busy = false
		h(n, err)
	})
	return nil
}

type asyncWriter struct {
	w    Writer
	s    Scheduler
	busy bool
}

func (a *asyncWriter) AsyncWrite(p []byte, h Handler) error {
	if a.busy {
		return ErrWouldBlock.at(OpAsyncWrite)
	}
	a.busy = true
	a.s.Post(func() {
		n, err := a.w.Write(p)
		a.busy = false
		h(n, err)
	})
	return nil
}

// ByteWriter is an in-memory Writer with a fixed capacity.
//
// A write that only partly fits stores what fits and reports the short count
// with a nil error; the copy engines turn that into ErrShortWrite. A write to
// a full ByteWriter fails with ErrNoSpace. Bytes already stored stay
// available through Bytes.
type ByteWriter struct {
	buf       []byte
	capacity  int
	unlimited bool
}

// NewByteWriter returns a ByteWriter that accepts at most capacity bytes.
func NewByteWriter(capacity int) *ByteWriter {
	return &ByteWriter{buf: make([]byte, 0, capacity), capacity: capacity}
}

// SetUnlimited lets the writer grow past its capacity when enabled.
func (w *ByteWriter) SetUnlimited(enabled bool) { w.unlimited = enabled }

func (w *ByteWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if w.unlimited {
		w.buf = append(w.buf, p...)
		return len(p), nil
	}
	room := w.capacity - len(w.buf)
	if room <= 0 {
		return 0, ErrNoSpace.at(OpByteWriterWrite)
	}
	n := min(room, len(p))
	w.buf = append(w.buf, p[:n]...)
	return n, nil
}

// Bytes returns the bytes written so far.
func (w *ByteWriter) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *ByteWriter) Len() int { return len(w.buf) }

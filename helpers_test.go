// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox_test

import (
	"bytes"

	"code.hybscloud.com/aiox"
)

// Helpers

// pattern returns n deterministic, non-repeating-looking bytes.
func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*7 + i/251)
	}
	return b
}

// chunkReader serves data in the scripted chunk sizes, then len(p)-sized
// chunks. It ends with (0, EOF).
type chunkReader struct {
	data  []byte
	sizes []int
	i     int
	reads int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	r.reads++
	if len(r.data) == 0 {
		return 0, aiox.EOF
	}
	n := len(p)
	if r.i < len(r.sizes) {
		n = min(n, r.sizes[r.i])
		r.i++
	}
	n = copy(p[:n], r.data)
	r.data = r.data[n:]
	return n, nil
}

// trickleReader hands out one byte per Read.
type trickleReader struct{ data []byte }

func (r *trickleReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, aiox.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

// zeroEOFReader ends the stream with (0, nil) instead of io.EOF.
type zeroEOFReader struct{ data []byte }

func (r *zeroEOFReader) Read(p []byte) (int, error) {
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

// dataThenErrReader returns its data together with err on the first call.
type dataThenErrReader struct {
	data []byte
	err  error
	used bool
}

func (r *dataThenErrReader) Read(p []byte) (int, error) {
	if r.used {
		return 0, aiox.EOF
	}
	r.used = true
	n := copy(p, r.data)
	return n, r.err
}

type errReader struct{ err error }

func (e errReader) Read(p []byte) (int, error) { return 0, e.err }

// overReader reports one byte more than it was asked for.
type overReader struct{ reads int }

func (r *overReader) Read(p []byte) (int, error) {
	r.reads++
	return len(p) + 1, nil
}

// countingReader counts Read calls on an underlying reader.
type countingReader struct {
	r     aiox.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

// sliceWriter is a plain writer without ReaderFrom.
type sliceWriter struct {
	data   []byte
	writes int
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	w.writes++
	w.data = append(w.data, p...)
	return len(p), nil
}

// shortWriter accepts at most limit bytes per call.
type shortWriter struct {
	limit  int
	data   []byte
	writes int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	w.writes++
	n := min(w.limit, len(p))
	w.data = append(w.data, p[:n]...)
	return n, nil
}

// shortZeroWriter accepts nothing and reports no error.
type shortZeroWriter struct{}

func (shortZeroWriter) Write(p []byte) (int, error) { return 0, nil }

type errWriter struct {
	n   int
	err error
}

func (w errWriter) Write(p []byte) (int, error) {
	return min(w.n, len(p)), w.err
}

// noWTReader hides bytes.Reader's WriterTo fast path.
type noWTReader struct{ r *bytes.Reader }

func (r noWTReader) Read(p []byte) (int, error) { return r.r.Read(p) }

// completion records Completion invocations.
type completion struct {
	calls   int
	written int64
	err     error
}

func (c *completion) done(written int64, err error) {
	c.calls++
	c.written = written
	c.err = err
}

// guard wraps async capabilities and tracks how many operations are
// outstanding across the pair.
type guard struct {
	outstanding int
	max         int
	reads       int
	writes      int
}

func (g *guard) enter() {
	g.outstanding++
	if g.outstanding > g.max {
		g.max = g.outstanding
	}
}

func (g *guard) reader(r aiox.AsyncReader) aiox.AsyncReader {
	return aiox.AsyncReaderFunc(func(p []byte, h aiox.Handler) error {
		g.enter()
		g.reads++
		err := r.AsyncRead(p, func(n int, err error) {
			g.outstanding--
			h(n, err)
		})
		if err != nil {
			g.outstanding--
		}
		return err
	})
}

func (g *guard) writer(w aiox.AsyncWriter) aiox.AsyncWriter {
	return aiox.AsyncWriterFunc(func(p []byte, h aiox.Handler) error {
		g.enter()
		g.writes++
		err := w.AsyncWrite(p, func(n int, err error) {
			g.outstanding--
			h(n, err)
		})
		if err != nil {
			g.outstanding--
		}
		return err
	})
}

// mode is a completion policy for the async adapters.
type mode struct {
	name  string
	sched func() (aiox.Scheduler, func())
}

var modes = []mode{
	{"Inline", func() (aiox.Scheduler, func()) { return aiox.Inline{}, func() {} }},
	{"Loop", func() (aiox.Scheduler, func()) {
		l := &aiox.Loop{}
		return l, func() { l.Run() }
	}},
}

// variant is one directional AsyncCopy entry point, driven through guarded
// async adapters where a side is async.
type variant struct {
	name string
	run  func(g *guard, s aiox.Scheduler, dst aiox.Writer, src aiox.Reader, n int64, done aiox.Completion)
}

var variants = []variant{
	{"CopyFromAsync", func(g *guard, s aiox.Scheduler, dst aiox.Writer, src aiox.Reader, n int64, done aiox.Completion) {
		aiox.CopyFromAsync(dst, g.reader(aiox.AsAsyncReader(src, s)), n, done)
	}},
	{"CopyToAsync", func(g *guard, s aiox.Scheduler, dst aiox.Writer, src aiox.Reader, n int64, done aiox.Completion) {
		aiox.CopyToAsync(g.writer(aiox.AsAsyncWriter(dst, s)), src, n, done)
	}},
	{"AsyncCopyN", func(g *guard, s aiox.Scheduler, dst aiox.Writer, src aiox.Reader, n int64, done aiox.Completion) {
		aiox.AsyncCopyN(g.writer(aiox.AsAsyncWriter(dst, s)), g.reader(aiox.AsAsyncReader(src, s)), n, done)
	}},
	{"AsyncCopy", func(g *guard, s aiox.Scheduler, dst aiox.Writer, src aiox.Reader, n int64, done aiox.Completion) {
		if n < 0 {
			aiox.AsyncCopy(g.writer(aiox.AsAsyncWriter(dst, s)), g.reader(aiox.AsAsyncReader(src, s)), done)
			return
		}
		aiox.AsyncCopyN(g.writer(aiox.AsAsyncWriter(dst, s)), g.reader(aiox.AsAsyncReader(src, s)), n, done)
	}},
}

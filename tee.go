// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

// TeeReader returns a Reader that writes to w what it reads from r, e.g. to
// hash content while it is being forwarded.
//
//   - Bytes are written to w before they are returned, together with the
//     read error, if any.
//   - If writing to w fails, that error is returned.
//   - A side write accepting a different count is reported as ErrShortWrite.
func TeeReader(r Reader, w Writer) Reader {
	return teeReader{r: r, w: w}
}

type teeReader struct {
	r Reader
	w Writer
}

func (t teeReader) Read(p []byte) (n int, err error) {
	n, err = t.r.Read(p)
	if n < 0 || n > len(p) {
		return 0, ErrOverRead.at(OpTeeReaderRead)
	}
	if n > 0 {
		if nw, ew := t.w.Write(p[:n]); ew != nil {
			return nw, ew
		} else if nw != n {
			return nw, ErrShortWrite.at(OpTeeReaderSideWrite)
		}
	}
	return n, err
}

// TeeWriter returns a Writer that writes each p to primary and then to tee.
// The tee only sees bytes the primary accepted in full; any count mismatch on
// either side is reported as ErrShortWrite.
func TeeWriter(primary, tee Writer) Writer {
	return teeWriter{w: primary, tee: tee}
}

type teeWriter struct {
	w   Writer
	tee Writer
}

func (t teeWriter) Write(p []byte) (n int, err error) {
	n, err = t.w.Write(p)
	if err != nil {
		return n, err
	}
	if n != len(p) {
		return n, ErrShortWrite.at(OpTeeWriterPrimaryWrite)
	}
	n2, err2 := t.tee.Write(p)
	if err2 != nil {
		return n2, err2
	}
	if n2 != len(p) {
		return n2, ErrShortWrite.at(OpTeeWriterTeeWrite)
	}
	return len(p), nil
}

// WriterToAdapter adapts a Reader to implement WriterTo using aiox.Copy.
type WriterToAdapter struct{ R Reader }

// Read forwards to the underlying Reader to preserve Reader semantics.
func (a WriterToAdapter) Read(p []byte) (int, error) { return a.R.Read(p) }

// WriteTo delegates to aiox.Copy so short writes and over-reads are detected.
func (a WriterToAdapter) WriteTo(dst Writer) (int64, error) { return Copy(dst, a.R) }

// ReaderFromAdapter adapts a Writer to implement ReaderFrom using aiox.Copy.
type ReaderFromAdapter struct{ W Writer }

// Write forwards to the underlying Writer to preserve Writer semantics.
func (a ReaderFromAdapter) Write(p []byte) (int, error) { return a.W.Write(p) }

// ReadFrom delegates to aiox.Copy so short writes and over-reads are detected.
func (a ReaderFromAdapter) ReadFrom(src Reader) (int64, error) { return Copy(a.W, src) }

// AsWriterTo wraps r so that it also implements WriterTo via aiox semantics.
func AsWriterTo(r Reader) Reader { return WriterToAdapter{R: r} }

// AsReaderFrom wraps w so that it also implements ReaderFrom via aiox semantics.
func AsReaderFrom(w Writer) Writer { return ReaderFromAdapter{W: w} }
